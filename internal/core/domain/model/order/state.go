package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Operation names a lifecycle transition.
type Operation string

const (
	OperationConfirm     Operation = "confirm"
	OperationReadyToShip Operation = "readyToShip"
	OperationShip        Operation = "ship"
	OperationDeliver     Operation = "deliver"
	OperationCancel      Operation = "cancel"
)

// Operations lists every transition in lifecycle order.
func Operations() []Operation {
	return []Operation{
		OperationConfirm,
		OperationReadyToShip,
		OperationShip,
		OperationDeliver,
		OperationCancel,
	}
}

// Validate checks that op is one of the known transitions.
func (op Operation) Validate() error {
	switch op {
	case OperationConfirm, OperationReadyToShip, OperationShip, OperationDeliver, OperationCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("operation is invalid", fmt.Errorf("%q is not a known operation", string(op)))
	}
}

// State is the behavior of an order in one particular status. Guards never
// mutate; a transition either applies every field change of the move or
// returns a TransitionIsNotAllowedError and changes nothing.
type State interface {
	// Status returns the status this behavior belongs to.
	Status() Status

	CanConfirm() bool
	CanReadyToShip() bool
	CanShip() bool
	CanDeliver() bool
	CanCancel() bool

	Confirm(o *Order) error
	ReadyToShip(o *Order) error
	Ship(o *Order) error
	Deliver(o *Order) error
	Cancel(o *Order, reason string) error
}

// ResolveState returns the behavior for status. It is a pure function and
// builds a new value on every call.
//
// Unknown or out-of-range statuses are rejected with a ValueIsInvalidError.
func ResolveState(status Status) (State, error) {
	switch status {
	case Pending:
		return pendingState{baseState{status: Pending}}, nil
	case ReadyToShip:
		return readyToShipState{baseState{status: ReadyToShip}}, nil
	case Shipping:
		return shippingState{baseState{status: Shipping}}, nil
	case Delivered:
		return deliveredState{baseState{status: Delivered}}, nil
	case Cancelled:
		return cancelledState{baseState{status: Cancelled}}, nil
	case Unknown:
		fallthrough
	default:
		return nil, status.Validate()
	}
}

// ResolveOrderState resolves the behavior for the order's current status.
func ResolveOrderState(o *Order) (State, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return ResolveState(o.status)
}

// CanPerform evaluates the guard of op on s.
func CanPerform(s State, op Operation) bool {
	switch op {
	case OperationConfirm:
		return s.CanConfirm()
	case OperationReadyToShip:
		return s.CanReadyToShip()
	case OperationShip:
		return s.CanShip()
	case OperationDeliver:
		return s.CanDeliver()
	case OperationCancel:
		return s.CanCancel()
	default:
		return false
	}
}

// Perform runs op on s. The reason is only used by OperationCancel.
func Perform(s State, op Operation, o *Order, reason string) error {
	switch op {
	case OperationConfirm:
		return s.Confirm(o)
	case OperationReadyToShip:
		return s.ReadyToShip(o)
	case OperationShip:
		return s.Ship(o)
	case OperationDeliver:
		return s.Deliver(o)
	case OperationCancel:
		return s.Cancel(o, reason)
	default:
		return op.Validate()
	}
}

// baseState rejects every operation. Concrete states embed it and override
// only the transitions their status allows.
type baseState struct {
	status Status
}

func (b baseState) Status() Status { return b.status }

func (b baseState) CanConfirm() bool     { return false }
func (b baseState) CanReadyToShip() bool { return false }
func (b baseState) CanShip() bool        { return false }
func (b baseState) CanDeliver() bool     { return false }
func (b baseState) CanCancel() bool      { return false }

func (b baseState) Confirm(o *Order) error {
	return b.reject(o, OperationConfirm)
}

func (b baseState) ReadyToShip(o *Order) error {
	return b.reject(o, OperationReadyToShip)
}

func (b baseState) Ship(o *Order) error {
	return b.reject(o, OperationShip)
}

func (b baseState) Deliver(o *Order) error {
	return b.reject(o, OperationDeliver)
}

func (b baseState) Cancel(o *Order, _ string) error {
	return b.reject(o, OperationCancel)
}

func (b baseState) reject(o *Order, op Operation) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return errs.NewTransitionIsNotAllowedError(string(op), b.status.String())
}

// owns checks that o is still in the status this behavior was resolved for.
// A behavior held across a reload of the order must not act on a newer status.
func (b baseState) owns(o *Order, op Operation) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != b.status {
		return errs.NewTransitionIsNotAllowedErrorWithCause(
			string(op),
			o.status.String(),
			fmt.Errorf("behavior was resolved for %s", b.status),
		)
	}
	return nil
}
