package commands_test

import (
	"errors"
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCar(t *testing.T, carID kernel.UUID) *catalog.Car {
	t.Helper()
	car, err := catalog.NewCar(carID, kernel.NewUUID(), "A123BC", "1HGCM82633A004352", "John Smith", "", "")
	require.NoError(t, err)
	return car
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	readerID := kernel.NewUUID()
	carID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), readerID, carID, nil)

	orderRepo := new(MockOrderRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockOrderCarUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		carRepo.On("Get", mock.Anything, carID).Return(newTestCar(t, carID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCarUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{commands.MsgOrderReceived}, notifier.Messages)
	assert.Equal(t, []string{readerID.String()}, notifier.UserIDs)
	orderRepo.AssertExpectations(t)
	carRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderCarUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CarNotFound(t *testing.T) {
	ctx := t.Context()
	carID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), carID, nil)

	carRepo := new(MockCarRepository)
	uow := new(MockOrderCarUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		carRepo.On("Get", mock.Anything, carID).
			Return(nil, errs.NewObjectNotFoundError("carID", carID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCarUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, notifier.Messages)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	carID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), carID, nil)

	orderRepo := new(MockOrderRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockOrderCarUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarRepository").Return(carRepo).Once(),
		carRepo.On("Get", mock.Anything, carID).Return(newTestCar(t, carID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCarUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Empty(t, notifier.Messages)
	uow.AssertExpectations(t)
}
