package catalog

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

var (
	// ErrServiceIsNotConstructed is returned when a Service instance was not
	// created through the NewService or RestoreService factory methods.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")
)

// Service represents a fixed catalog item: a billable piece of repair work
// with a name and a price. Order lines reference services but snapshot the
// price, so editing a Service never changes existing orders.
type Service struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

// NewService creates a Service with validation.
func NewService(id kernel.UUID, name string, price kernel.Money) (*Service, error) {
	service := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		service.setID(id),
		service.setName(name),
		service.setPrice(price),
	); err != nil {
		return nil, err
	}

	return service, nil
}

// RestoreService rehydrates a Service from persistence.
func RestoreService(id kernel.UUID, name string, price kernel.Money) (*Service, error) {
	return NewService(id, name, price)
}

// Validate ensures the Service was created through a factory method.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the catalog name of the service.
func (s *Service) Name() string {
	return s.name
}

// Price returns the current catalog price.
func (s *Service) Price() kernel.Money {
	return s.price
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Service) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}
