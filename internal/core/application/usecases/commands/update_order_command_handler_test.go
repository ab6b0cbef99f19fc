package commands_test

import (
	"testing"
	"time"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOwnedOrder(t *testing.T, orderID, readerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(orderID, kernel.NewUUID(), &readerID, nil, time.Now())
	require.NoError(t, err)
	return o
}

func newUpdateOrderHandler(factory commands.OrderUoWFactory, notifier *MockNotifier) commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(factory, services.NewAccessPolicy(), notifier)
}

func TestUpdateOrderCommandHandler_Handle_FreshOrderGetsUpdatedMessage(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	readerID := kernel.NewUUID()
	existing := newOwnedOrder(t, orderID, readerID)
	estimate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	cmd, _ := commands.NewUpdateOrderCommand(orderID, readerID, &estimate)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := newUpdateOrderHandler(factory, notifier)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.New, result.PriorStatus)
	assert.Equal(t, commands.MsgOrderUpdated, result.Message)
	assert.Equal(t, []string{commands.MsgOrderUpdated}, notifier.Messages)

	assert.Equal(t, order.AdvancePaid, existing.Status())
	require.NotNil(t, existing.EstimateDate())
	assert.Equal(t, estimate, *existing.EstimateDate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_PaidOrderGetsPaidMessage(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	readerID := kernel.NewUUID()
	existing := newOwnedOrder(t, orderID, readerID)
	require.NoError(t, existing.MarkAdvancePaid())
	cmd, _ := commands.NewUpdateOrderCommand(orderID, readerID, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := newUpdateOrderHandler(factory, notifier)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.AdvancePaid, result.PriorStatus)
	assert.Equal(t, commands.MsgOrderPaid, result.Message)
	assert.Nil(t, existing.EstimateDate())
}

func TestUpdateOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	existing := newOwnedOrder(t, orderID, kernel.NewUUID())
	stranger := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(orderID, stranger, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := newUpdateOrderHandler(factory, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)

	// The order is untouched: still New, still owned by the original reader.
	assert.Equal(t, order.New, existing.Status())
	assert.Empty(t, notifier.Messages)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(orderID, kernel.NewUUID(), nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateOrderHandler(factory, new(MockNotifier))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.UpdateOrderCommand
	h := newUpdateOrderHandler(new(MockOrderUoWFactory), new(MockNotifier))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
