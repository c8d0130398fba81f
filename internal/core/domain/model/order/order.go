package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

const (
	// PaymentStatusPaid is recorded when an order is delivered.
	PaymentStatusPaid = "Paid"

	// PaymentStatusCancelledRefund is recorded when an order is cancelled.
	PaymentStatusCancelledRefund = "Cancelled; refund within 24h for transfer payments"
)

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Status is one of the five lifecycle statuses
//   - Status only changes through a State returned by ResolveState
//   - Every applied transition increments version by exactly one
//   - Delivered and Cancelled orders never change again
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the sole discriminator of which State applies
	status Status

	// paymentStatus is free-form payment/refund text
	paymentStatus string

	// orderNotes is free-form text; cancel records its reason here
	orderNotes string

	// version is the optimistic concurrency token
	version int

	// createdAt is when the order was placed (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order with version 0.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Unpaid", "leave at the door")
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, paymentStatus, orderNotes string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        Pending,
		paymentStatus: paymentStatus,
		orderNotes:    orderNotes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order loaded from storage. It validates the
// identity, status and version but does not check how the status was reached.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	paymentStatus, orderNotes string,
	version int,
	createdAt time.Time,
) (*Order, error) {
	var versionErr error
	if version < 0 {
		versionErr = errs.NewValueIsInvalidErrorWithCause("version is invalid", fmt.Errorf("%d is negative", version))
	}

	if err := errors.Join(id.Validate(), status.Validate(), versionErr); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        status,
		paymentStatus: paymentStatus,
		orderNotes:    orderNotes,
		version:       version,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the free-form payment state.
func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

// OrderNotes returns the free-form order notes.
func (o *Order) OrderNotes() string {
	return o.orderNotes
}

// Version returns the optimistic concurrency token. A freshly created order
// has version 0; each applied transition adds one.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsTerminal reports whether the order reached Delivered or Cancelled.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// moveTo sets the next status and bumps the version.
func (o *Order) moveTo(next Status) {
	o.status = next
	o.version++
}
