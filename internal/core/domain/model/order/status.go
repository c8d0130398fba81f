package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──confirm──> ReadyToShip ──ship──> Shipping ──deliver──> Delivered
//	   │                      │
//	   └──────cancel──────────┴──────────> Cancelled
//
// Delivered and Cancelled are terminal. The behavior attached to each status
// lives in the State implementations returned by ResolveState.
type Status int

const (
	// Unknown is the zero value and never a valid persisted status.
	Unknown Status = iota

	// Pending is the initial status of every new order, awaiting confirmation.
	Pending

	// ReadyToShip means the order was confirmed and awaits pickup.
	ReadyToShip

	// Shipping means the order is with the carrier.
	Shipping

	// Delivered is terminal: the order reached the customer and was paid.
	Delivered

	// Cancelled is terminal: the order was withdrawn before shipping.
	Cancelled
)

// getStatusCodes returns the stable codes used for persistence and logs.
func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:     "Pending",
		ReadyToShip: "ReadyToShip",
		Shipping:    "Shipping",
		Delivered:   "Delivered",
		Cancelled:   "Cancelled",
	}
}

// getStatusLabels returns the storefront display labels.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:     "Chờ Xác Nhận",
		ReadyToShip: "Chờ Lấy Hàng",
		Shipping:    "Đang Giao Hàng",
		Delivered:   "Đã Giao",
		Cancelled:   "Đã Hủy",
	}
}

// ParseStatus converts a persisted status value to a Status. Both the stable
// code ("ReadyToShip") and the display label ("Chờ Lấy Hàng") are accepted,
// so rows written by older storefront versions still load.
//
// Unrecognized values are rejected instead of being read as Pending.
func ParseStatus(s string) (Status, error) {
	value := strings.TrimSpace(s)
	for status, code := range getStatusCodes() {
		if strings.EqualFold(value, code) {
			return status, nil
		}
	}
	for status, label := range getStatusLabels() {
		if value == label {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that s is one of the five lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stable code of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "Unknown"
}

// Label returns the display label of the status, or the empty string for invalid values.
func (s Status) Label() string {
	return getStatusLabels()[s]
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
