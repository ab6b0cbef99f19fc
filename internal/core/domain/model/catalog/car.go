package catalog

import (
	"errors"
	"fmt"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

// maxVINLength is the upper bound on vehicle identification numbers.
const maxVINLength = 17

var (
	// ErrCarIsNotConstructed is returned when a Car instance was not created
	// through the NewCar or RestoreCar factory methods.
	ErrCarIsNotConstructed = errors.New("Car must be created via NewCar constructor")
)

// Car represents a customer vehicle registered with the shop. A Car belongs
// to exactly one CarModel; a CarModel may have many Cars.
//
// Car follows these invariants:
//   - Must have a valid unique identifier and car model reference
//   - Plate number, VIN, and owner name are required
//   - VIN is at most 17 characters
//
// Image URL and description are optional free-form attributes.
type Car struct {
	id          kernel.UUID
	carModelID  kernel.UUID
	plateNumber string
	vin         string
	ownerName   string
	imageURL    string
	description string

	isConstructed bool
}

// NewCar creates a Car with validation.
func NewCar(id, carModelID kernel.UUID, plateNumber, vin, ownerName, imageURL, description string) (*Car, error) {
	car := &Car{
		imageURL:      imageURL,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		car.setID(id),
		car.setCarModelID(carModelID),
		car.setPlateNumber(plateNumber),
		car.setVIN(vin),
		car.setOwnerName(ownerName),
	); err != nil {
		return nil, err
	}

	return car, nil
}

// RestoreCar rehydrates a Car from persistence.
func RestoreCar(id, carModelID kernel.UUID, plateNumber, vin, ownerName, imageURL, description string) (*Car, error) {
	return NewCar(id, carModelID, plateNumber, vin, ownerName, imageURL, description)
}

// Validate ensures the Car was created through a factory method.
func (c *Car) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarIsNotConstructed
	}
	return nil
}

// ID returns the car's unique identifier.
func (c *Car) ID() kernel.UUID {
	return c.id
}

// CarModelID returns the identifier of the model this car belongs to.
func (c *Car) CarModelID() kernel.UUID {
	return c.carModelID
}

// PlateNumber returns the registration plate number.
func (c *Car) PlateNumber() string {
	return c.plateNumber
}

// VIN returns the vehicle identification number.
func (c *Car) VIN() string {
	return c.vin
}

// OwnerName returns the free-text name of the car's owner.
func (c *Car) OwnerName() string {
	return c.ownerName
}

// ImageURL returns the optional image location, empty when not set.
func (c *Car) ImageURL() string {
	return c.imageURL
}

// Description returns the optional free-text description, empty when not set.
func (c *Car) Description() string {
	return c.description
}

func (c *Car) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Car) setCarModelID(carModelID kernel.UUID) error {
	if err := carModelID.Validate(); err != nil {
		return err
	}
	c.carModelID = carModelID
	return nil
}

func (c *Car) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	c.plateNumber = plateNumber
	return nil
}

func (c *Car) setVIN(vin string) error {
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

func (c *Car) setOwnerName(ownerName string) error {
	if ownerName == "" {
		return errs.NewValueIsRequiredError("ownerName")
	}
	c.ownerName = ownerName
	return nil
}
