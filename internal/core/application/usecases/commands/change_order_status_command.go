package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// ChangeOrderStatusCommand requests one lifecycle operation on an existing order.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.OperationCancel, "customer request")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	operation order.Operation
	reason    string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order ID and operation. Cancelling
// requires a non-blank reason; other operations ignore it.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	operation order.Operation,
	reason string,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOperation(operation, reason),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operation returns the requested lifecycle operation.
func (c ChangeOrderStatusCommand) Operation() order.Operation {
	return c.operation
}

// Reason returns the cancellation reason, empty for other operations.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setOperation(operation order.Operation, reason string) error {
	if err := operation.Validate(); err != nil {
		return err
	}

	if operation == order.OperationCancel {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return ErrCancelReasonIsRequired
		}
		c.reason = reason
	}

	c.operation = operation
	return nil
}
