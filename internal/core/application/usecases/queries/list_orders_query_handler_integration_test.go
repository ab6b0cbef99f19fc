package queries_test

import (
	"context"
	"testing"
	"time"

	"autoservice/internal/adapters/out/postgres/catalogrepo"
	"autoservice/internal/adapters/out/postgres/orderrepo"
	"autoservice/internal/adapters/out/postgres/reviewrepo"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// listingAggregateTracker is a mock implementation of the repositories'
// aggregate tracker interface.
type listingAggregateTracker struct {
	mock.Mock
}

func (m *listingAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ListOrdersQueryHandlerIntegrationTestSuite verifies the order listing
// against PostgreSQL: the case-insensitive owner/plate/VIN search, literal
// wildcard handling, default ordering, and pagination.
type ListOrdersQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	handler         queries.ListOrdersQueryHandler

	smithCarID  kernel.UUID
	brownCarID  kernel.UUID
	garageCarID kernel.UUID
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.CarModelDTO{},
		&catalogrepo.CarDTO{},
		&catalogrepo.ServiceDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&reviewrepo.ReviewDTO{},
	))

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.seedCars(ctx)
}

// seedCars creates three cars whose owner names, plates, and VINs the search
// tests match against. The second car's VIN contains the digits "100" so that
// a "100%" search would over-match if the percent sign acted as a wildcard.
func (suite *ListOrdersQueryHandlerIntegrationTestSuite) seedCars(ctx context.Context) {
	tracker := new(listingAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	carModelRepo := catalogrepo.NewGormCarModelRepository(suite.db, tracker)
	carModel, err := catalog.RestoreCarModel(kernel.NewUUID(), "Toyota", "Corolla", "1.8L I4", 2020)
	suite.Require().NoError(err)
	suite.Require().NoError(carModelRepo.Add(ctx, carModel))

	carRepo := catalogrepo.NewGormCarRepository(suite.db, tracker)

	suite.smithCarID = kernel.NewUUID()
	smithCar, err := catalog.NewCar(suite.smithCarID, carModel.ID(), "A123BC", "1HGCM82633A004352", "John Smith", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(carRepo.Add(ctx, smithCar))

	suite.brownCarID = kernel.NewUUID()
	brownCar, err := catalog.NewCar(suite.brownCarID, carModel.ID(), "XYZ789", "WVWZZZ1JZXW000100", "Jane Brown", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(carRepo.Add(ctx, brownCar))

	suite.garageCarID = kernel.NewUUID()
	garageCar, err := catalog.NewCar(suite.garageCarID, carModel.ID(), "B777XX", "KMHDN46D84U123456", "Acme 100% Garage", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(carRepo.Add(ctx, garageCar))
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, reviews CASCADE").Error)

	tracker := new(listingAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, tracker)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) placeOrder(carID kernel.UUID, placedAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), carID, nil, nil, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepository.Add(context.Background(), o))
	return o
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) listOrders(search string, page int) queries.OrdersPage {
	query, err := queries.NewListOrdersQuery(search, page)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) plates(page queries.OrdersPage) []string {
	plates := make([]string, len(page.Items))
	for i, item := range page.Items {
		plates[i] = item.PlateNumber
	}
	return plates
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_EmptyTerm_ReturnsAllNewestFirst() {
	now := time.Now()
	suite.placeOrder(suite.smithCarID, now.Add(-3*time.Hour))
	suite.placeOrder(suite.brownCarID, now.Add(-2*time.Hour))
	suite.placeOrder(suite.garageCarID, now.Add(-1*time.Hour))

	result := suite.listOrders("", 1)

	suite.Equal(int64(3), result.TotalCount)
	suite.Equal([]string{"B777XX", "XYZ789", "A123BC"}, suite.plates(result))
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_MatchesOwnerNameCaseInsensitive() {
	now := time.Now()
	suite.placeOrder(suite.smithCarID, now)
	suite.placeOrder(suite.brownCarID, now)

	result := suite.listOrders("jOhN", 1)

	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("John Smith", result.Items[0].OwnerName)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_MatchesPlateSubstring() {
	now := time.Now()
	suite.placeOrder(suite.smithCarID, now)
	suite.placeOrder(suite.brownCarID, now)

	result := suite.listOrders("23bc", 1)

	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("A123BC", result.Items[0].PlateNumber)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_MatchesVINSubstring() {
	now := time.Now()
	suite.placeOrder(suite.smithCarID, now)
	suite.placeOrder(suite.brownCarID, now)
	suite.placeOrder(suite.garageCarID, now)

	result := suite.listOrders("Cm826", 1)

	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("A123BC", result.Items[0].PlateNumber)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_NoMatch_ReturnsEmptyPage() {
	suite.placeOrder(suite.smithCarID, time.Now())

	result := suite.listOrders("no such owner", 1)

	suite.Zero(result.TotalCount)
	suite.Empty(result.Items)
	suite.Zero(result.TotalPages)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_PercentSignMatchesLiterally() {
	now := time.Now()
	suite.placeOrder(suite.smithCarID, now)
	// The Brown car's VIN contains "100"; a wildcard percent would match it.
	suite.placeOrder(suite.brownCarID, now)
	suite.placeOrder(suite.garageCarID, now)

	result := suite.listOrders("100%", 1)

	suite.Equal(int64(1), result.TotalCount)
	suite.Require().Len(result.Items, 1)
	suite.Equal("Acme 100% Garage", result.Items[0].OwnerName)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_UnderscoreMatchesLiterally() {
	// "o_n" as a wildcard would match the "ohn" in John Smith.
	suite.placeOrder(suite.smithCarID, time.Now())

	result := suite.listOrders("o_n", 1)

	suite.Zero(result.TotalCount)
	suite.Empty(result.Items)
}

func (suite *ListOrdersQueryHandlerIntegrationTestSuite) TestHandle_PaginatesAtPageSizeThree() {
	now := time.Now()
	suite.placeOrder(suite.smithCarID, now.Add(-4*time.Hour))
	suite.placeOrder(suite.smithCarID, now.Add(-3*time.Hour))
	suite.placeOrder(suite.brownCarID, now.Add(-2*time.Hour))
	suite.placeOrder(suite.garageCarID, now.Add(-1*time.Hour))

	firstPage := suite.listOrders("", 1)
	suite.Equal(int64(4), firstPage.TotalCount)
	suite.Equal(2, firstPage.TotalPages)
	suite.Len(firstPage.Items, 3)

	secondPage := suite.listOrders("", 2)
	suite.Len(secondPage.Items, 1)
	// The oldest order lands on the last page.
	suite.Equal("A123BC", secondPage.Items[0].PlateNumber)
}

func TestListOrdersQueryHandlerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ListOrdersQueryHandlerIntegrationTestSuite))
}
