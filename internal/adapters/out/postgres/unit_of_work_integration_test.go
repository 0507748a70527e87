package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "store/internal/adapters/out/postgres"
	"store/internal/adapters/out/postgres/orderrepo"
	"store/internal/adapters/out/postgres/pgtest"
	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"
	"store/internal/core/ports"
	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the unit of work and the order
// repository against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("orders", "order_items"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(d *discount.Discount) *order.Order {
	c, err := customer.NewCustomer("12345678911", "Bruce Wayne", "")
	suite.Require().NoError(err)
	mouse, err := product.NewProduct(kernel.NewUUID(), "Mouse", decimal.RequireFromString("10.00"), true)
	suite.Require().NoError(err)
	keyboard, err := product.NewProduct(kernel.NewUUID(), "Keyboard", decimal.RequireFromString("5.00"), true)
	suite.Require().NoError(err)

	o := order.NewOrder(c, decimal.NewFromInt(3), d, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	o.AddItem(mouse, 2)
	o.AddItem(keyboard, 1)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) countOrders(number string) int64 {
	var n int64
	suite.Require().NoError(suite.pg.DB.Model(&orderrepo.OrderDTO{}).Where("number = ?", number).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
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

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrderWithItems() {
	ctx := context.Background()
	o := suite.newOrder(nil)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	var dto orderrepo.OrderDTO
	err := suite.pg.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line")
	}).First(&dto, "number = ?", o.Number()).Error
	suite.Require().NoError(err)

	suite.Equal("12345678911", dto.CustomerDocument)
	suite.Equal(order.WaitingPayment.String(), dto.Status)
	suite.Nil(dto.DiscountCode)
	suite.True(dto.Subtotal.Equal(decimal.NewFromInt(25)))
	suite.True(dto.Total.Equal(decimal.NewFromInt(28)))
	suite.True(dto.Date.Equal(o.Date()))
	suite.Require().Len(dto.Items, 2)
	suite.Equal("Mouse", dto.Items[0].Title)
	suite.Equal(2, dto.Items[0].Quantity)
	suite.Equal(1, dto.Items[0].Line)
	suite.Equal("Keyboard", dto.Items[1].Title)

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates()
	suite.Require().Len(tracked, 1)
	suite.Equal(o.Number(), tracked[0].Key)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PersistsDiscount() {
	ctx := context.Background()
	d, err := discount.NewDiscount("OFF5", discount.Fixed, decimal.NewFromInt(5), nil)
	suite.Require().NoError(err)
	o := suite.newOrder(d)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.pg.DB.First(&dto, "number = ?", o.Number()).Error)
	suite.Require().NotNil(dto.DiscountCode)
	suite.Equal("OFF5", *dto.DiscountCode)
	suite.True(dto.DiscountAmount.Equal(decimal.NewFromInt(5)))
	suite.True(dto.Total.Equal(decimal.NewFromInt(23)))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrder() {
	ctx := context.Background()
	o := suite.newOrder(nil)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.countOrders(o.Number()))
	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IsolationBetweenInstances() {
	ctx := context.Background()
	o := suite.newOrder(nil)
	writer := suite.factory.Create()

	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.OrderRepository().Add(ctx, o))

	suite.Zero(suite.countOrders(o.Number()), "Uncommitted order should not be visible")

	suite.Require().NoError(writer.Commit(ctx))
	suite.Equal(int64(1), suite.countOrders(o.Number()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_RejectsInvalidOrder() {
	ctx := context.Background()
	empty := order.NewOrder(nil, decimal.Zero, nil, time.Now())
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.OrderRepository().Add(ctx, empty)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Zero(suite.countOrders(empty.Number()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_DuplicateNumberFails() {
	ctx := context.Background()
	o := suite.newOrder(nil)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.OrderRepository().Add(ctx, o))
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	defer func() { _ = second.Rollback(ctx) }()

	suite.Require().Error(second.OrderRepository().Add(ctx, o))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
