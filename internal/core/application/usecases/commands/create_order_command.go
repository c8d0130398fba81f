package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPaymentStatusIsRequired = errs.NewValueIsRequiredError("paymentStatus")
)

// CreateOrderCommand represents a request to register a new order in Pending status.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Unpaid", "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus string
	orderNotes    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and the payment status is not empty.
// Notes are optional.
func NewCreateOrderCommand(orderID kernel.UUID, paymentStatus, orderNotes string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		orderNotes: orderNotes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the initial payment status text.
func (c CreateOrderCommand) PaymentStatus() string {
	return c.paymentStatus
}

// OrderNotes returns the initial order notes.
func (c CreateOrderCommand) OrderNotes() string {
	return c.orderNotes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPaymentStatus(paymentStatus string) error {
	if paymentStatus == "" {
		return ErrPaymentStatusIsRequired
	}

	c.paymentStatus = paymentStatus
	return nil
}
