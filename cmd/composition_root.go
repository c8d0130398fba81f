package cmd

import (
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/metrics"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/orderstate"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config            Config
	gormDB            *gorm.DB
	logger            *slog.Logger
	registry          *prometheus.Registry
	uowFactory        *postgres.GormUnitOfWorkFactory
	transitionMetrics *metrics.TransitionMetrics
	serverMetrics     *metrics.ServerMetrics
	stateContext      *orderstate.Context
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()

	transitionMetrics, err := metrics.NewTransitionMetrics(registry)
	if err != nil {
		return nil, err
	}

	serverMetrics, err := metrics.NewServerMetrics(registry)
	if err != nil {
		return nil, err
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	return &CompositionRoot{
		config:            config,
		gormDB:            gormDB,
		logger:            logger,
		registry:          registry,
		uowFactory:        uowFactory,
		transitionMetrics: transitionMetrics,
		serverMetrics:     serverMetrics,
		stateContext: orderstate.NewContext(
			orderstate.NewUnitOfWorkStore(uowFactory),
			logger,
			transitionMetrics,
		),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) OrderStateContext() *orderstate.Context {
	return c.stateContext
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.stateContext)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.stateContext)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.config.PendingOrderTTL,
		c.config.ExpirySchedule,
		c.logger,
	)
}

func (c *CompositionRoot) ServerMetrics() *metrics.ServerMetrics {
	return c.serverMetrics
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
