package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var (
	ErrCreateCarModelCommandIsNotConstructed = errors.New(
		"CreateCarModelCommand must be created via NewCreateCarModelCommand constructor",
	)
)

// CreateCarModelCommand represents a request to add a manufacturer model to
// the catalog. The year bounds are enforced by the domain at construction
// time in the handler, where the clock is applied.
type CreateCarModelCommand struct { //nolint:recvcheck //using for validation
	carModelID kernel.UUID
	carMake    string
	model      string
	engine     string
	year       int

	guard guard.ConstructorGuard
}

// NewCreateCarModelCommand creates a command to add a car model.
func NewCreateCarModelCommand(carModelID kernel.UUID, carMake, model, engine string, year int) (CreateCarModelCommand, error) {
	cmd := CreateCarModelCommand{
		year:  year,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarModelID(carModelID),
		cmd.setCarMake(carMake),
		cmd.setModel(model),
		cmd.setEngine(engine),
	); err != nil {
		return CreateCarModelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarModelCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarModelCommandIsNotConstructed)
}

// CarModelID returns the identifier the new car model will be created under.
func (c CreateCarModelCommand) CarModelID() kernel.UUID {
	return c.carModelID
}

// CarMake returns the manufacturer name.
func (c CreateCarModelCommand) CarMake() string {
	return c.carMake
}

// Model returns the model name.
func (c CreateCarModelCommand) Model() string {
	return c.model
}

// Engine returns the engine description.
func (c CreateCarModelCommand) Engine() string {
	return c.engine
}

// Year returns the model year.
func (c CreateCarModelCommand) Year() int {
	return c.year
}

func (c *CreateCarModelCommand) setCarModelID(carModelID kernel.UUID) error {
	if err := carModelID.Validate(); err != nil {
		return err
	}
	c.carModelID = carModelID
	return nil
}

func (c *CreateCarModelCommand) setCarMake(carMake string) error {
	if carMake == "" {
		return errs.NewValueIsRequiredError("make")
	}
	c.carMake = carMake
	return nil
}

func (c *CreateCarModelCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	c.model = model
	return nil
}

func (c *CreateCarModelCommand) setEngine(engine string) error {
	if engine == "" {
		return errs.NewValueIsRequiredError("engine")
	}
	c.engine = engine
	return nil
}
