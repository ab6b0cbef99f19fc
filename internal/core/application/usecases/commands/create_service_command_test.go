package commands_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateServiceCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	price, err := kernel.MoneyFromString("49.99")
	require.NoError(t, err)

	cmd, err := commands.NewCreateServiceCommand(id, "Oil change", price)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ServiceID())
	assert.Equal(t, "Oil change", cmd.Name())
	assert.Equal(t, "49.99", cmd.Price().String())
}

func TestNewCreateServiceCommand_MissingName(t *testing.T) {
	price, err := kernel.MoneyFromString("49.99")
	require.NoError(t, err)

	_, err = commands.NewCreateServiceCommand(kernel.NewUUID(), "", price)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateServiceCommand_UnconstructedPrice(t *testing.T) {
	_, err := commands.NewCreateServiceCommand(kernel.NewUUID(), "Oil change", kernel.Money{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestCreateServiceCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateServiceCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateServiceCommandIsNotConstructed)
}
