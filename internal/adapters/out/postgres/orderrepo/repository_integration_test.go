package orderrepo_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// productLineComparer compares normalized product lines through their
// accessors; package documents are compared as JSON since JSONB storage
// normalizes key order and whitespace.
var productLineComparer = cmp.Comparer(func(a, b order.ProductLine) bool {
	return a.ProductID() == b.ProductID() &&
		a.Name() == b.Name() &&
		a.Price() == b.Price() &&
		a.Quantity() == b.Quantity()
})

// OrderRepositoryIntegrationTestSuite verifies persistence behavior of the
// order store adapter against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.repository = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	pkg := json.RawMessage(`{"width":10,"length":10,"height":10,"weight":500}`)

	quantity := gofakeit.Number(1, 5)
	line, err := order.NewProductLine(
		gofakeit.UUID(),
		gofakeit.ProductName(),
		pkg,
		gofakeit.Price(1, 100),
		&quantity,
	)
	suite.Require().NoError(err)

	address, err := order.NewAddress(json.RawMessage(fmt.Sprintf(
		`{"streetAddress":%q,"city":%q,"country":"US"}`,
		gofakeit.Street(), gofakeit.City(),
	)))
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		gofakeit.UUID(),
		[]order.ProductLine{line},
		gofakeit.Price(1, 20),
		address,
		time.Now(),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPutAndGetRoundTrip() {
	ctx := context.Background()
	created := suite.newOrder()

	suite.Require().NoError(suite.repository.Put(ctx, created))

	restored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(created))
	suite.Equal(created.UserID(), restored.UserID())
	suite.Equal(created.Status(), restored.Status())
	suite.Equal(created.DeliveryPrice(), restored.DeliveryPrice())
	suite.Equal(created.Total(), restored.Total())
	suite.WithinDuration(created.CreatedDate(), restored.CreatedDate(), time.Millisecond)
	suite.WithinDuration(created.ModifiedDate(), restored.ModifiedDate(), time.Millisecond)
	suite.Empty(cmp.Diff(created.Products(), restored.Products(), productLineComparer))
	suite.JSONEq(string(created.Address().Raw()), string(restored.Address().Raw()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPutOverwritesSilently() {
	ctx := context.Background()
	created := suite.newOrder()

	suite.Require().NoError(suite.repository.Put(ctx, created))
	// A second write with the same key must succeed, not conflict.
	suite.Require().NoError(suite.repository.Put(ctx, created))

	restored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(created))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestIdenticalContentDistinctRows() {
	ctx := context.Background()

	first := suite.newOrder()
	second, err := order.NewOrder(
		kernel.NewUUID(),
		first.UserID(),
		first.Products(),
		first.DeliveryPrice(),
		first.Address(),
		first.CreatedDate(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Put(ctx, first))
	suite.Require().NoError(suite.repository.Put(ctx, second))

	restoredFirst, err := suite.repository.Get(ctx, first.ID())
	suite.Require().NoError(err)
	restoredSecond, err := suite.repository.Get(ctx, second.ID())
	suite.Require().NoError(err)

	suite.False(restoredFirst.IsEqual(restoredSecond))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetMissingOrder() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestPutRejectsUnconstructedOrder() {
	err := suite.repository.Put(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
