package orderstate

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Store commits the pending mutations of one order.
//
// Implementations return an error wrapping errs.ErrVersionIsInvalid when the
// order was changed concurrently since it was loaded.
type Store interface {
	Save(ctx context.Context, o *order.Order) error
}

// StoreFunc adapts a function to Store.
type StoreFunc func(ctx context.Context, o *order.Order) error

// Save calls f.
func (f StoreFunc) Save(ctx context.Context, o *order.Order) error {
	return f(ctx, o)
}

// UnitOfWorkStore saves each order in its own unit of work.
type UnitOfWorkStore struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewUnitOfWorkStore creates a Store backed by uowFactory.
func NewUnitOfWorkStore(uowFactory ports.UnitOfWorkFactory) *UnitOfWorkStore {
	return &UnitOfWorkStore{uowFactory: uowFactory}
}

// Save updates o inside a fresh transaction and commits it.
func (s *UnitOfWorkStore) Save(ctx context.Context, o *order.Order) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
