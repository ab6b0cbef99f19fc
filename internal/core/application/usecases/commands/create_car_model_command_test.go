package commands_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarModelCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCarModelCommand(id, "Toyota", "Corolla", "1.8L I4", 2020)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CarModelID())
	assert.Equal(t, "Toyota", cmd.CarMake())
	assert.Equal(t, "Corolla", cmd.Model())
	assert.Equal(t, "1.8L I4", cmd.Engine())
	assert.Equal(t, 2020, cmd.Year())
}

func TestNewCreateCarModelCommand_MissingMake(t *testing.T) {
	_, err := commands.NewCreateCarModelCommand(kernel.NewUUID(), "", "Corolla", "1.8L I4", 2020)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateCarModelCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateCarModelCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateCarModelCommandIsNotConstructed)
}
