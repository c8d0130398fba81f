package order

// pendingState: confirm -> ReadyToShip, cancel -> Cancelled.
type pendingState struct {
	baseState
}

func (pendingState) CanConfirm() bool { return true }
func (pendingState) CanCancel() bool  { return true }

func (s pendingState) Confirm(o *Order) error {
	if err := s.owns(o, OperationConfirm); err != nil {
		return err
	}

	o.moveTo(ReadyToShip)
	return nil
}

func (s pendingState) Cancel(o *Order, reason string) error {
	if err := s.owns(o, OperationCancel); err != nil {
		return err
	}

	cancel(o, reason)
	return nil
}

// readyToShipState: ship -> Shipping, cancel -> Cancelled.
type readyToShipState struct {
	baseState
}

func (readyToShipState) CanShip() bool   { return true }
func (readyToShipState) CanCancel() bool { return true }

func (s readyToShipState) Ship(o *Order) error {
	if err := s.owns(o, OperationShip); err != nil {
		return err
	}

	o.moveTo(Shipping)
	return nil
}

func (s readyToShipState) Cancel(o *Order, reason string) error {
	if err := s.owns(o, OperationCancel); err != nil {
		return err
	}

	cancel(o, reason)
	return nil
}

// shippingState: deliver -> Delivered. Cancelling a parcel already with the
// carrier is not allowed.
type shippingState struct {
	baseState
}

func (shippingState) CanDeliver() bool { return true }

func (s shippingState) Deliver(o *Order) error {
	if err := s.owns(o, OperationDeliver); err != nil {
		return err
	}

	o.paymentStatus = PaymentStatusPaid
	o.moveTo(Delivered)
	return nil
}

// deliveredState is terminal.
type deliveredState struct {
	baseState
}

// cancelledState is terminal.
type cancelledState struct {
	baseState
}

// cancel applies the cancellation side effects together with the status change.
func cancel(o *Order, reason string) {
	o.paymentStatus = PaymentStatusCancelledRefund
	o.orderNotes = reason
	o.moveTo(Cancelled)
}
