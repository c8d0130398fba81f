// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Creation goes straight to the repository; every status change goes through
// the order state context so that guards, logging and persistence handling
// stay in one place.
package commands

import (
	"context"

	"fulfillment/internal/core/application/orderstate"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// OrderStateMachine applies lifecycle operations to loaded orders.
// *orderstate.Context implements it.
type OrderStateMachine interface {
	Apply(ctx context.Context, o *order.Order, op order.Operation, reason string) orderstate.Result
}
