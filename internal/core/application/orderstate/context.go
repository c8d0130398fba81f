package orderstate

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Observer is notified of every transition attempt after it was logged.
type Observer interface {
	Observe(ctx context.Context, result Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, result Result)

// Observe calls f.
func (f ObserverFunc) Observe(ctx context.Context, result Result) {
	f(ctx, result)
}

// Context is the façade over the order lifecycle. It holds no per-order
// state: the behavior is resolved from the order's status on every call.
type Context struct {
	store     Store
	logger    *slog.Logger
	observers []Observer
}

// NewContext creates a Context persisting through store.
func NewContext(store Store, logger *slog.Logger, observers ...Observer) *Context {
	return &Context{
		store:     store,
		logger:    logger.With("component", "order_state_context"),
		observers: observers,
	}
}

// Confirm moves a Pending order to ReadyToShip.
func (c *Context) Confirm(ctx context.Context, o *order.Order) Result {
	return c.Apply(ctx, o, order.OperationConfirm, "")
}

// ReadyToShip is part of the lifecycle surface but no status allows it;
// the result is always OutcomeRejected for a valid order.
func (c *Context) ReadyToShip(ctx context.Context, o *order.Order) Result {
	return c.Apply(ctx, o, order.OperationReadyToShip, "")
}

// Ship moves a ReadyToShip order to Shipping.
func (c *Context) Ship(ctx context.Context, o *order.Order) Result {
	return c.Apply(ctx, o, order.OperationShip, "")
}

// Deliver moves a Shipping order to Delivered and marks it paid.
func (c *Context) Deliver(ctx context.Context, o *order.Order) Result {
	return c.Apply(ctx, o, order.OperationDeliver, "")
}

// Cancel moves a Pending or ReadyToShip order to Cancelled, records reason in
// the order notes and marks the payment for refund.
func (c *Context) Cancel(ctx context.Context, o *order.Order, reason string) Result {
	return c.Apply(ctx, o, order.OperationCancel, reason)
}

// CanConfirm reports whether Confirm would be legal for o.
func (c *Context) CanConfirm(o *order.Order) bool {
	return c.Can(o, order.OperationConfirm)
}

// CanReadyToShip reports whether ReadyToShip would be legal for o. Always false.
func (c *Context) CanReadyToShip(o *order.Order) bool {
	return c.Can(o, order.OperationReadyToShip)
}

// CanShip reports whether Ship would be legal for o.
func (c *Context) CanShip(o *order.Order) bool {
	return c.Can(o, order.OperationShip)
}

// CanDeliver reports whether Deliver would be legal for o.
func (c *Context) CanDeliver(o *order.Order) bool {
	return c.Can(o, order.OperationDeliver)
}

// CanCancel reports whether Cancel would be legal for o.
func (c *Context) CanCancel(o *order.Order) bool {
	return c.Can(o, order.OperationCancel)
}

// Can evaluates the guard of op for o without mutating it. Orders that
// cannot be resolved to a behavior allow nothing.
func (c *Context) Can(o *order.Order, op order.Operation) bool {
	state, err := order.ResolveOrderState(o)
	if err != nil {
		return false
	}
	return order.CanPerform(state, op)
}

// Apply runs op on o and persists the result. The reason is only used by
// order.OperationCancel.
func (c *Context) Apply(ctx context.Context, o *order.Order, op order.Operation, reason string) Result {
	result := c.apply(ctx, o, op, reason)
	c.log(ctx, result)
	for _, observer := range c.observers {
		observer.Observe(ctx, result)
	}
	return result
}

func (c *Context) apply(ctx context.Context, o *order.Order, op order.Operation, reason string) Result {
	result := Result{Operation: op}

	if err := op.Validate(); err != nil {
		result.Outcome = OutcomeInvalid
		result.Err = err
		return result
	}

	state, err := order.ResolveOrderState(o)
	if o != nil && o.Validate() == nil {
		result.OrderID = o.ID()
		result.From = o.Status()
		result.To = o.Status()
	}
	if err != nil {
		result.Outcome = OutcomeInvalid
		result.Err = err
		return result
	}

	if err = order.Perform(state, op, o, reason); err != nil {
		result.Outcome = OutcomeRejected
		if !errors.Is(err, errs.ErrTransitionIsNotAllowed) {
			result.Outcome = OutcomeInvalid
		}
		result.Err = err
		return result
	}
	result.To = o.Status()

	if err = c.store.Save(ctx, o); err != nil {
		result.Outcome = OutcomePersistFailed
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			result.Outcome = OutcomeConflict
		}
		result.Err = err
		return result
	}

	result.Outcome = OutcomeApplied
	return result
}

func (c *Context) log(ctx context.Context, result Result) {
	attrs := []any{
		"order_id", orderIDAttr(result.OrderID),
		"operation", string(result.Operation),
		"outcome", string(result.Outcome),
		"from", result.From.String(),
		"state", result.To.String(),
	}
	if result.Err != nil {
		attrs = append(attrs, "error", result.Err)
	}

	switch result.Outcome {
	case OutcomeApplied:
		c.logger.InfoContext(ctx, "Order transition applied", attrs...)
	case OutcomeRejected:
		c.logger.WarnContext(ctx, "Order transition rejected", attrs...)
	case OutcomeInvalid:
		c.logger.WarnContext(ctx, "Order state could not be resolved", attrs...)
	case OutcomeConflict:
		c.logger.WarnContext(ctx, "Order was changed concurrently", attrs...)
	case OutcomePersistFailed:
		c.logger.ErrorContext(ctx, "Failed to persist order transition", attrs...)
	}
}

func orderIDAttr(id kernel.UUID) string {
	if id.Validate() != nil {
		return ""
	}
	return id.String()
}
