package cmd

import (
	"log/slog"

	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.BusinessClock
	registry   *prometheus.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, clock kernel.BusinessClock, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.NewCommittedAggregatesCounter(registry)),
		clock:      clock,
		registry:   registry,
		logger:     logger,
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) closingPeriodUoWFactory() commands.ClosingPeriodUoWFactory {
	return FuncClosingPeriodUoWFactory(func() commands.ClosingPeriodUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) featureUoWFactory() commands.FeatureUoWFactory {
	return FuncFeatureUoWFactory(func() commands.FeatureUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateClosingPeriodCommandHandler() *commands.CreateClosingPeriodCommandHandler {
	h := commands.NewCreateClosingPeriodCommandHandler(c.closingPeriodUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateDeleteClosingPeriodCommandHandler() *commands.DeleteClosingPeriodCommandHandler {
	h := commands.NewDeleteClosingPeriodCommandHandler(c.closingPeriodUoWFactory())
	return &h
}

func (c *CompositionRoot) CreatePurgeExpiredClosingPeriodsCommandHandler() *commands.PurgeExpiredClosingPeriodsCommandHandler {
	h := commands.NewPurgeExpiredClosingPeriodsCommandHandler(c.closingPeriodUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() *commands.UpdateProductCommandHandler {
	h := commands.NewUpdateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateArchiveProductCommandHandler() *commands.ArchiveProductCommandHandler {
	h := commands.NewArchiveProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateEnableProductOrderingCommandHandler() *commands.EnableProductOrderingCommandHandler {
	h := commands.NewEnableProductOrderingCommandHandler(c.featureUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDisableProductOrderingCommandHandler() *commands.DisableProductOrderingCommandHandler {
	h := commands.NewDisableProductOrderingCommandHandler(c.featureUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetClosingPeriodsQueryHandler() queries.GetClosingPeriodsQueryHandler {
	return queries.NewGetClosingPeriodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductOrderingStatusQueryHandler() queries.GetProductOrderingStatusQueryHandler {
	return queries.NewGetProductOrderingStatusQueryHandler(c.gormDB)
}

// CreateGetActiveProductsQueryHandler reads through a unit of work that never begins a
// transaction, so its repository runs on the shared connection.
func (c *CompositionRoot) CreateGetActiveProductsQueryHandler() queries.GetActiveProductsQueryHandler {
	return queries.NewGetActiveProductsQueryHandler(c.uowFactory.Create().ProductRepository())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

// CreateRouter builds the HTTP API with every use case wired in.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	metrics := httpin.NewMetrics(c.registry)
	server := httpin.NewServer(httpin.Handlers{
		CreateClosingPeriod:        c.CreateCreateClosingPeriodCommandHandler(),
		DeleteClosingPeriod:        c.CreateDeleteClosingPeriodCommandHandler(),
		PurgeExpiredClosingPeriods: c.CreatePurgeExpiredClosingPeriodsCommandHandler(),
		CreateProduct:              c.CreateCreateProductCommandHandler(),
		UpdateProduct:              c.CreateUpdateProductCommandHandler(),
		ArchiveProduct:             c.CreateArchiveProductCommandHandler(),
		EnableProductOrdering:      c.CreateEnableProductOrderingCommandHandler(),
		DisableProductOrdering:     c.CreateDisableProductOrderingCommandHandler(),
		CreateOrder:                c.CreateCreateOrderCommandHandler(),
		UpdateOrder:                c.CreateUpdateOrderCommandHandler(),
		GetClosingPeriods:          c.CreateGetClosingPeriodsQueryHandler(),
		GetProductOrderingStatus:   c.CreateGetProductOrderingStatusQueryHandler(),
		GetActiveProducts:          c.CreateGetActiveProductsQueryHandler(),
		GetOrders:                  c.CreateGetOrdersQueryHandler(),
	}, metrics, c.logger)

	return httpin.NewRouter(httpin.RouterConfig{
		Credentials: httpin.Credentials{
			Username:     c.config.AdminUsername,
			PasswordHash: []byte(c.config.AdminPasswordHash),
		},
		RateLimitPerSecond: c.config.RateLimitPerSecond,
		Gatherer:           c.registry,
	}, server, metrics, c.logger)
}

// CreateJobManager builds the scheduled jobs. Schedules run in the business time zone.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := jobs.NewClosingPeriodPurgeJob(
		c.CreatePurgeExpiredClosingPeriodsCommandHandler(),
		c.config.AdminUsername,
		c.config.ClosingPeriodPurgeSchedule,
		[]cron.Option{cron.WithLocation(c.clock.Location())},
		c.logger,
	)
	return jobs.NewJobManager(c.logger, purge)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncClosingPeriodUoWFactory func() commands.ClosingPeriodUoW

func (f FuncClosingPeriodUoWFactory) Create() commands.ClosingPeriodUoW {
	return f()
}

type FuncFeatureUoWFactory func() commands.FeatureUoW

func (f FuncFeatureUoWFactory) Create() commands.FeatureUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
