package catalog_test

import (
	"strings"
	"testing"

	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	t.Run("should create car with valid fields", func(t *testing.T) {
		id := kernel.NewUUID()
		modelID := kernel.NewUUID()

		c, err := catalog.NewCar(id, modelID, "ABC123", "WVWZZZ1JZXW000001", "Jonas Petraitis", "", "")

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.True(t, c.CarModelID().IsEqual(modelID))
		assert.Equal(t, "ABC123", c.PlateNumber())
		assert.Equal(t, "WVWZZZ1JZXW000001", c.VIN())
		assert.Equal(t, "Jonas Petraitis", c.OwnerName())
		assert.Empty(t, c.ImageURL())
		assert.Empty(t, c.Description())
	})

	t.Run("should keep optional image and description", func(t *testing.T) {
		c, err := catalog.NewCar(kernel.NewUUID(), kernel.NewUUID(),
			"ABC123", "VIN123", "Owner", "https://img.example/car.jpg", "rear bumper dent")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example/car.jpg", c.ImageURL())
		assert.Equal(t, "rear bumper dent", c.Description())
	})

	t.Run("should accept VIN of exactly 17 characters", func(t *testing.T) {
		vin := strings.Repeat("A", 17)

		c, err := catalog.NewCar(kernel.NewUUID(), kernel.NewUUID(), "ABC123", vin, "Owner", "", "")

		require.NoError(t, err)
		assert.Equal(t, vin, c.VIN())
	})

	t.Run("should reject VIN longer than 17 characters", func(t *testing.T) {
		vin := strings.Repeat("A", 18)

		_, err := catalog.NewCar(kernel.NewUUID(), kernel.NewUUID(), "ABC123", vin, "Owner", "", "")

		assert.Error(t, err)
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		_, err := catalog.NewCar(kernel.NewUUID(), kernel.NewUUID(), "", "", "", "", "")

		assert.Error(t, err)
	})

	t.Run("should reject invalid car model id", func(t *testing.T) {
		_, err := catalog.NewCar(kernel.NewUUID(), kernel.UUID{}, "ABC123", "VIN123", "Owner", "", "")

		assert.Error(t, err)
	})
}

func TestCar_Validate(t *testing.T) {
	var c catalog.Car

	assert.Equal(t, catalog.ErrCarIsNotConstructed, c.Validate())
}
