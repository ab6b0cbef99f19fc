package commands_test

import (
	"strings"
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarCommand_ValidInput(t *testing.T) {
	carID := kernel.NewUUID()
	modelID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarCommand(carID, modelID, "A123BC", "1HGCM82633A004352", "John Smith", "", "")
	require.NoError(t, err)
	assert.Equal(t, carID, cmd.CarID())
	assert.Equal(t, modelID, cmd.CarModelID())
	assert.Equal(t, "A123BC", cmd.PlateNumber())
	assert.Equal(t, "1HGCM82633A004352", cmd.VIN())
	assert.Equal(t, "John Smith", cmd.OwnerName())
}

func TestNewCreateCarCommand_TooLongVIN(t *testing.T) {
	vin := strings.Repeat("1", 18)
	_, err := commands.NewCreateCarCommand(kernel.NewUUID(), kernel.NewUUID(), "A123BC", vin, "John Smith", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateCarCommand_MissingPlate(t *testing.T) {
	_, err := commands.NewCreateCarCommand(kernel.NewUUID(), kernel.NewUUID(), "", "1HGCM82633A004352", "John Smith", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateCarCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateCarCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateCarCommandIsNotConstructed)
}
