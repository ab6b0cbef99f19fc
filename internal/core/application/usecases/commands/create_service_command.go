package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var (
	ErrCreateServiceCommandIsNotConstructed = errors.New(
		"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
	)
)

// CreateServiceCommand represents a request to add a billable service to the
// catalog.
type CreateServiceCommand struct { //nolint:recvcheck //using for validation
	serviceID kernel.UUID
	name      string
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateServiceCommand creates a command to add a catalog service.
func NewCreateServiceCommand(serviceID kernel.UUID, name string, price kernel.Money) (CreateServiceCommand, error) {
	cmd := CreateServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceID(serviceID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

// ServiceID returns the identifier the new service will be created under.
func (c CreateServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Name returns the catalog name of the service.
func (c CreateServiceCommand) Name() string {
	return c.name
}

// Price returns the catalog price.
func (c CreateServiceCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateServiceCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *CreateServiceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateServiceCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
