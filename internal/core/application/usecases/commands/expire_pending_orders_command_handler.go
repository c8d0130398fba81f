package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/application/orderstate"
	"fulfillment/internal/core/domain/model/order"
)

// ExpirePendingOrdersCommandHandler cancels stale Pending orders through the
// order state machine.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    OrderStateMachine
	now        func() time.Time
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	machine OrderStateMachine,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		machine:    machine,
		now:        time.Now,
	}
}

// Handle cancels every order that has been Pending for longer than the
// command's TTL and returns how many were cancelled. Orders changed
// concurrently are skipped; other failures are joined into the error after
// the remaining orders were processed.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().UTC().Add(-cmd.TTL())
	orders, err := h.uowFactory.Create().OrderRepository().GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	var failures []error
	for _, aggregate := range orders {
		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		result := h.machine.Apply(ctx, aggregate, order.OperationCancel, ExpiredOrderReason)
		switch result.Outcome {
		case orderstate.OutcomeApplied:
			expired++
		case orderstate.OutcomeConflict, orderstate.OutcomeRejected:
			// already moved on by another request
		default:
			failures = append(failures, fmt.Errorf("order %s: %w", result.OrderID, resultError(result)))
		}
	}

	return expired, errors.Join(failures...)
}
