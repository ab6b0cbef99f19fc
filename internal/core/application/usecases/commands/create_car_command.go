package commands

import (
	"errors"
	"fmt"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

// maxVINLength mirrors the catalog bound so malformed input fails before the
// transaction is opened.
const maxVINLength = 17

var (
	ErrCreateCarCommandIsNotConstructed = errors.New(
		"CreateCarCommand must be created via NewCreateCarCommand constructor",
	)
)

// CreateCarCommand represents a request to register a customer vehicle under
// an existing car model. Image URL and description are optional.
type CreateCarCommand struct { //nolint:recvcheck //using for validation
	carID       kernel.UUID
	carModelID  kernel.UUID
	plateNumber string
	vin         string
	ownerName   string
	imageURL    string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCarCommand creates a command to register a car.
func NewCreateCarCommand(
	carID, carModelID kernel.UUID,
	plateNumber, vin, ownerName, imageURL, description string,
) (CreateCarCommand, error) {
	cmd := CreateCarCommand{
		imageURL:    imageURL,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarID(carID),
		cmd.setCarModelID(carModelID),
		cmd.setPlateNumber(plateNumber),
		cmd.setVIN(vin),
		cmd.setOwnerName(ownerName),
	); err != nil {
		return CreateCarCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarCommandIsNotConstructed)
}

// CarID returns the identifier the new car will be created under.
func (c CreateCarCommand) CarID() kernel.UUID {
	return c.carID
}

// CarModelID returns the catalog model the car belongs to.
func (c CreateCarCommand) CarModelID() kernel.UUID {
	return c.carModelID
}

// PlateNumber returns the registration plate number.
func (c CreateCarCommand) PlateNumber() string {
	return c.plateNumber
}

// VIN returns the vehicle identification number.
func (c CreateCarCommand) VIN() string {
	return c.vin
}

// OwnerName returns the free-text owner name.
func (c CreateCarCommand) OwnerName() string {
	return c.ownerName
}

// ImageURL returns the optional image location.
func (c CreateCarCommand) ImageURL() string {
	return c.imageURL
}

// Description returns the optional free-text description.
func (c CreateCarCommand) Description() string {
	return c.description
}

func (c *CreateCarCommand) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}
	c.carID = carID
	return nil
}

func (c *CreateCarCommand) setCarModelID(carModelID kernel.UUID) error {
	if err := carModelID.Validate(); err != nil {
		return err
	}
	c.carModelID = carModelID
	return nil
}

func (c *CreateCarCommand) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	c.plateNumber = plateNumber
	return nil
}

func (c *CreateCarCommand) setVIN(vin string) error {
	if vin == "" {
		return errs.NewValueIsRequiredError("vin")
	}
	if len(vin) > maxVINLength {
		return errs.NewValueIsInvalidErrorWithCause("vin",
			fmt.Errorf("%q is longer than %d characters", vin, maxVINLength))
	}
	c.vin = vin
	return nil
}

func (c *CreateCarCommand) setOwnerName(ownerName string) error {
	if ownerName == "" {
		return errs.NewValueIsRequiredError("ownerName")
	}
	c.ownerName = ownerName
	return nil
}
