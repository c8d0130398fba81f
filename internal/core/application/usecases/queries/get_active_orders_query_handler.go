package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists orders that can still change status.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns Pending, ReadyToShip and Shipping orders sorted by creation
// time, then by ID. Rows stored with a display label instead of a code are
// included as well.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			created_at
		FROM orders
		WHERE status IN ?
		ORDER BY created_at, id
	`, activeStatusValues()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			status    string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parsed, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			ID:        orderID,
			Status:    parsed,
			CreatedAt: createdAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// activeStatusValues lists every stored form of a non-terminal status.
func activeStatusValues() []string {
	values := make([]string, 0, 6)
	for _, status := range []order.Status{order.Pending, order.ReadyToShip, order.Shipping} {
		values = append(values, status.String(), status.Label())
	}
	return values
}
