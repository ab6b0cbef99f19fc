package commands_test

import (
	"testing"
	"time"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	readerID := kernel.NewUUID()
	carID := kernel.NewUUID()
	estimate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(orderID, readerID, carID, &estimate)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, readerID, cmd.ReaderID())
	assert.Equal(t, carID, cmd.CarID())
	require.NotNil(t, cmd.EstimateDate())
	assert.Equal(t, estimate, *cmd.EstimateDate())
}

func TestNewCreateOrderCommand_NilEstimateDate(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.EstimateDate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidReaderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCarID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
