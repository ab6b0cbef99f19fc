package commands_test

import (
	"context"
	"time"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/review"
	"autoservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the command handler tests. Every handler composes
// the same repositories behind a narrow unit of work, so the mocks live in
// one place instead of being redeclared per test file.

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.OrderReview) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReviewRepository) LastCreatedAtByOwner(ctx context.Context, ownerID kernel.UUID) (*time.Time, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

type MockCarModelRepository struct{ mock.Mock }

func (m *MockCarModelRepository) Add(ctx context.Context, cm *catalog.CarModel) error {
	args := m.Called(ctx, cm)
	return args.Error(0)
}
func (m *MockCarModelRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.CarModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CarModel), args.Error(1)
}

type MockCarRepository struct{ mock.Mock }

func (m *MockCarRepository) Add(ctx context.Context, c *catalog.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCarRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Car), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, s *catalog.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

// txMock embeds the shared transaction lifecycle expectations.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCarUoW struct{ txMock }

func (m *MockOrderCarUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderCarUoW) CarRepository() ports.CarRepository {
	args := m.Called()
	return args.Get(0).(ports.CarRepository)
}

type MockOrderCarUoWFactory struct{ mock.Mock }

func (m *MockOrderCarUoWFactory) Create() commands.OrderCarUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCarUoW)
}

type MockOrderLineUoW struct{ txMock }

func (m *MockOrderLineUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderLineUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

type MockOrderLineUoWFactory struct{ mock.Mock }

func (m *MockOrderLineUoWFactory) Create() commands.OrderLineUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLineUoW)
}

type MockReviewUoW struct{ txMock }

func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}
func (m *MockReviewUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockCarModelUoW struct{ txMock }

func (m *MockCarModelUoW) CarModelRepository() ports.CarModelRepository {
	args := m.Called()
	return args.Get(0).(ports.CarModelRepository)
}

type MockCarModelUoWFactory struct{ mock.Mock }

func (m *MockCarModelUoWFactory) Create() commands.CarModelUoW {
	args := m.Called()
	return args.Get(0).(commands.CarModelUoW)
}

type MockCarUoW struct{ txMock }

func (m *MockCarUoW) CarRepository() ports.CarRepository {
	args := m.Called()
	return args.Get(0).(ports.CarRepository)
}
func (m *MockCarUoW) CarModelRepository() ports.CarModelRepository {
	args := m.Called()
	return args.Get(0).(ports.CarModelRepository)
}

type MockCarUoWFactory struct{ mock.Mock }

func (m *MockCarUoWFactory) Create() commands.CarUoW {
	args := m.Called()
	return args.Get(0).(commands.CarUoW)
}

type MockServiceUoW struct{ txMock }

func (m *MockServiceUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

type MockServiceUoWFactory struct{ mock.Mock }

func (m *MockServiceUoWFactory) Create() commands.ServiceUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceUoW)
}

// MockNotifier records delivered messages for assertion.
type MockNotifier struct {
	Messages []string
	UserIDs  []string
}

func (m *MockNotifier) Notify(_ context.Context, userID string, message string) {
	m.UserIDs = append(m.UserIDs, userID)
	m.Messages = append(m.Messages, message)
}
