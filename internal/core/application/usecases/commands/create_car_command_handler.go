package commands

import (
	"context"

	"autoservice/internal/core/domain/model/catalog"
)

// CreateCarCommandHandler handles the business logic for registering a
// customer vehicle. The referenced car model must already exist.
type CreateCarCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewCreateCarCommandHandler creates a handler for car registration.
func NewCreateCarCommandHandler(uowFactory CarUoWFactory) CreateCarCommandHandler {
	return CreateCarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the car registration command.
func (h *CreateCarCommandHandler) Handle(ctx context.Context, cmd CreateCarCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CarModelRepository().Get(ctx, cmd.CarModelID()); err != nil {
		return err
	}

	car, err := catalog.NewCar(
		cmd.CarID(), cmd.CarModelID(),
		cmd.PlateNumber(), cmd.VIN(), cmd.OwnerName(), cmd.ImageURL(), cmd.Description(),
	)
	if err != nil {
		return err
	}

	if err = uow.CarRepository().Add(ctx, car); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
