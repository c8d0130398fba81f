// Package ports defines the persistence contracts of the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate if the stored version still equals
	// aggregate.Version()-1, i.e. nobody else committed a transition since the
	// order was loaded.
	//
	// Returns errs.ErrVersionIsInvalid when the stored version moved on and
	// errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves Pending orders placed before t,
	// oldest first. Used by the pending order expiry job.
	GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error)
}
