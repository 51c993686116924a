package postgres_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/catalogrepo"
	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across the
// order and catalog repositories against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &catalogrepo.ItemDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, catalog_items").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.Require().NotNil(first)
	suite.Require().NotNil(second)
	suite.NotSame(first, second)
	suite.NotNil(first.OrderRepository())
	suite.NotNil(first.CatalogRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutTransaction_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutTransaction_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_ReusesTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesOrderVisibleToOtherUnitsOfWork() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.buildOrder("user-1")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	retrieved, err := reader.OrderRepository().Get(ctx, *testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(*testOrder.ID()))
	suite.Equal("user-1", retrieved.UserID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsPendingOrder() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.buildOrder("user-1")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCatalogAndOrdersShareOneTransaction() {
	ctx := context.Background()
	suite.seedCatalog()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Checkout reads catalog prices and writes the order in the same transaction.
	items, err := uow.CatalogRepository().GetByIDs(ctx, []int{1, 2})
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Milk", items[0].Name())
	suite.Equal(int64(350), items[0].UnitPrice().Cents())

	testOrder := suite.buildOrder("user-1")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	orders, err := reader.OrderRepository().GetByUser(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCatalogRepository_GetAll_ListsWholeCatalog() {
	ctx := context.Background()
	suite.seedCatalog()

	var uow ports.UnitOfWork = suite.factory.Create()
	items, err := uow.CatalogRepository().GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal(1, items[0].ID())
	suite.Equal(3, items[2].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCatalog() {
	rows := []catalogrepo.ItemDTO{
		{ID: 1, Name: "Milk", UnitPriceCents: 350},
		{ID: 2, Name: "Bread", UnitPriceCents: 225},
		{ID: 3, Name: "Eggs", UnitPriceCents: 499},
	}
	suite.Require().NoError(suite.db.Create(&rows).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(userID string) *order.Order {
	unitPrice, err := kernel.MoneyFromFloat(3.50)
	suite.Require().NoError(err)
	item, err := order.NewItem(1, "Milk", unitPrice, 2)
	suite.Require().NoError(err)

	location, err := kernel.NewGeoPoint(37.7749, -122.4194)
	suite.Require().NoError(err)
	address, err := order.NewDeliveryAddress(
		"500 Market St", "San Francisco", "CA", "94105", location)
	suite.Require().NoError(err)

	testOrder, err := order.NewBuilder().
		SetUserID(userID).
		SetItems([]order.Item{item}).
		SetDeliveryAddress(address).
		SetPaymentMethod("card").
		Build()
	suite.Require().NoError(err)

	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
