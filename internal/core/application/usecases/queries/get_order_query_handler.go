package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	Status        string
	PaymentStatus string
	OrderNotes    string
	Version       int
}

// Handle returns the order or an errs.ObjectNotFoundError. An order whose
// stored status is not recognized is reported as errs.ErrValueIsInvalid.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			payment_status,
			order_notes,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	state, err := order.ResolveState(status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:            query.OrderID(),
		Status:        status,
		PaymentStatus: row.PaymentStatus,
		OrderNotes:    row.OrderNotes,
		Version:       row.Version,
		Guards: OrderGuards{
			CanConfirm:     state.CanConfirm(),
			CanReadyToShip: state.CanReadyToShip(),
			CanShip:        state.CanShip(),
			CanDeliver:     state.CanDeliver(),
			CanCancel:      state.CanCancel(),
		},
	}, nil
}
