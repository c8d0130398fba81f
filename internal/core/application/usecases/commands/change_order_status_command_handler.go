package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/application/orderstate"
)

var (
	ErrTransitionRejected = errors.New("transition rejected")
	ErrOrderConflict      = errors.New("order was changed concurrently")
	ErrOrderNotSaved      = errors.New("order was not saved")
	ErrOrderStateInvalid  = errors.New("order state is invalid")
)

// ChangeOrderStatusCommandHandler loads an order and hands the requested
// operation to the order state machine.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, ErrTransitionRejected):
//	    // operation not allowed in result.From
//	case errors.Is(err, ErrOrderConflict):
//	    // reload and retry
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    OrderStateMachine
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	machine OrderStateMachine,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		machine:    machine,
	}
}

// Handle applies the command's operation. The returned Result is always
// filled when the order was found; the error tells what went wrong when
// Result.OK() is false.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (orderstate.Result, error) {
	if err := cmd.Validate(); err != nil {
		return orderstate.Result{}, err
	}

	aggregate, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return orderstate.Result{}, err
	}

	result := h.machine.Apply(ctx, aggregate, cmd.Operation(), cmd.Reason())
	return result, resultError(result)
}

// resultError maps a non-applied result to one of the handler's sentinels,
// keeping the underlying cause in the chain.
func resultError(result orderstate.Result) error {
	var sentinel error
	switch result.Outcome {
	case orderstate.OutcomeApplied:
		return nil
	case orderstate.OutcomeRejected:
		sentinel = ErrTransitionRejected
	case orderstate.OutcomeConflict:
		sentinel = ErrOrderConflict
	case orderstate.OutcomePersistFailed:
		sentinel = ErrOrderNotSaved
	default:
		sentinel = ErrOrderStateInvalid
	}

	if result.Err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, result.Err)
}
