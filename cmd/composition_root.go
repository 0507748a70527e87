package cmd

import (
	"log/slog"

	"store/internal/adapters/out/kafka"
	"store/internal/adapters/out/postgres"
	"store/internal/adapters/out/postgres/customerrepo"
	"store/internal/adapters/out/postgres/deliveryfeerepo"
	"store/internal/adapters/out/postgres/discountrepo"
	"store/internal/adapters/out/postgres/productrepo"
	"store/internal/core/application/usecases/commands"
	"store/internal/core/application/usecases/queries"
	"store/internal/core/ports"
	"store/internal/jobs"
	"store/internal/pkg/clock"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	sqlxDB     *sqlx.DB
	logger     *slog.Logger
	clock      clock.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	products   ports.ProductRepository
	publisher  *kafka.OrderCreatedPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, sqlxDB *sqlx.DB, logger *slog.Logger) *CompositionRoot {
	var products ports.ProductRepository = productrepo.NewGormProductRepository(gormDB)
	if config.Cache.ProductSize > 0 {
		products = productrepo.NewCachedProductRepository(products, config.Cache.ProductSize, config.Cache.ProductTTL)
	}

	var publisher *kafka.OrderCreatedPublisher
	if config.Kafka.Enabled() {
		publisher = kafka.NewOrderCreatedPublisher(
			config.Kafka.Brokers, config.Kafka.OrderCreatedTopic, config.Kafka.BatchTimeout,
		)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		sqlxDB:     sqlxDB,
		logger:     logger,
		clock:      clock.NewRealClock(),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		products:   products,
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	// A nil *OrderCreatedPublisher must not reach the handler as a non-nil interface.
	var publisher ports.OrderEventPublisher
	if c.publisher != nil {
		publisher = c.publisher
	}

	return commands.NewCreateOrderCommandHandler(
		customerrepo.NewGormCustomerRepository(c.gormDB),
		deliveryfeerepo.NewGormDeliveryFeeRepository(c.gormDB),
		discountrepo.NewGormDiscountRepository(c.gormDB),
		c.products,
		f,
		publisher,
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreatePurgeExpiredDiscountsCommandHandler() *commands.PurgeExpiredDiscountsCommandHandler {
	return commands.NewPurgeExpiredDiscountsCommandHandler(
		discountrepo.NewGormDiscountRepository(c.gormDB),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.sqlxDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeExpiredDiscountsCommandHandler(),
		c.config.Jobs.DiscountPurgeSchedule,
		c.logger,
	)
}

// Close releases resources owned by the root.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
