package commands

import (
	"context"
	"time"

	"autoservice/internal/core/domain/model/catalog"
)

// CreateCarModelCommandHandler handles the business logic for adding a
// manufacturer model to the catalog.
type CreateCarModelCommandHandler struct {
	uowFactory CarModelUoWFactory
}

// NewCreateCarModelCommandHandler creates a handler for car model creation.
func NewCreateCarModelCommandHandler(uowFactory CarModelUoWFactory) CreateCarModelCommandHandler {
	return CreateCarModelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the car model creation command. The year upper bound is
// checked against the current date here.
func (h *CreateCarModelCommandHandler) Handle(ctx context.Context, cmd CreateCarModelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	carModel, err := catalog.NewCarModel(cmd.CarModelID(), cmd.CarMake(), cmd.Model(), cmd.Engine(), cmd.Year(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CarModelRepository().Add(ctx, carModel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
