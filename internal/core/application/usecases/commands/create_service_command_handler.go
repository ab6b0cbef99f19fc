package commands

import (
	"context"

	"autoservice/internal/core/domain/model/catalog"
)

// CreateServiceCommandHandler handles the business logic for adding a
// billable service to the catalog.
type CreateServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewCreateServiceCommandHandler creates a handler for service creation.
func NewCreateServiceCommandHandler(uowFactory ServiceUoWFactory) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the service creation command.
func (h *CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	service, err := catalog.NewService(cmd.ServiceID(), cmd.Name(), cmd.Price())
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

	if err = uow.ServiceRepository().Add(ctx, service); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
