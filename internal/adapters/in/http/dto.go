package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the body of POST /api/v1/orders. ID is optional; a random one
// is generated when it is empty.
type NewOrder struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
	OrderNotes    string `json:"orderNotes"`
}

// CreatedOrder is returned by POST /api/v1/orders.
type CreatedOrder struct {
	ID string `json:"id"`
}

// CancelOrder is the body of POST /api/v1/orders/:id/cancel.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// Status carries both the stable code and the display label.
type Status struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Guards tells which transitions the order currently allows.
type Guards struct {
	CanConfirm     bool `json:"canConfirm"`
	CanReadyToShip bool `json:"canReadyToShip"`
	CanShip        bool `json:"canShip"`
	CanDeliver     bool `json:"canDeliver"`
	CanCancel      bool `json:"canCancel"`
}

// Order is returned by GET /api/v1/orders/:id.
type Order struct {
	ID            string `json:"id"`
	Status        Status `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	OrderNotes    string `json:"orderNotes"`
	Version       int    `json:"version"`
	Guards        Guards `json:"guards"`
}

// ActiveOrder is one element of GET /api/v1/orders/active.
type ActiveOrder struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transition is returned by the status change endpoints.
type Transition struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Outcome   string `json:"outcome"`
	From      Status `json:"from"`
	To        Status `json:"to"`
}
