package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/orderstate"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, t)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderStateMachine struct{ mock.Mock }

func (m *MockOrderStateMachine) Apply(
	ctx context.Context,
	o *order.Order,
	op order.Operation,
	reason string,
) orderstate.Result {
	args := m.Called(ctx, o, op, reason)
	return args.Get(0).(orderstate.Result)
}

// readOnlyFactory returns a factory whose unit of work only hands out repo.
func readOnlyFactory(repo ports.OrderRepository) *MockOrderUoWFactory {
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}
