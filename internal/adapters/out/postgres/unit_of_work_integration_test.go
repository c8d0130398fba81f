package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies GormUnitOfWork against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsTransition() {
	ctx := context.Background()
	o := suite.seedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	state, err := order.ResolveOrderState(loaded)
	suite.Require().NoError(err)
	suite.Require().NoError(state.Confirm(loaded))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyToShip, reloaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsTransition() {
	ctx := context.Background()
	o := suite.seedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	state, err := order.ResolveOrderState(o)
	suite.Require().NoError(err)
	suite.Require().NoError(state.Cancel(o, "rolled back"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, reloaded.Status())
	suite.Empty(reloaded.OrderNotes())
	suite.Equal(0, reloaded.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConflictInsideTransaction() {
	ctx := context.Background()
	o := suite.seedOrder()

	stale, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	winner := suite.factory.Create()
	suite.Require().NoError(winner.Begin(ctx))
	state, err := order.ResolveOrderState(o)
	suite.Require().NoError(err)
	suite.Require().NoError(state.Confirm(o))
	suite.Require().NoError(winner.OrderRepository().Update(ctx, o))
	suite.Require().NoError(winner.Commit(ctx))

	loser := suite.factory.Create()
	suite.Require().NoError(loser.Begin(ctx))
	staleState, err := order.ResolveOrderState(stale)
	suite.Require().NoError(err)
	suite.Require().NoError(staleState.Cancel(stale, "too slow"))

	err = loser.OrderRepository().Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(loser.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), "Unpaid", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}
