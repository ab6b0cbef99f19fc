package catalog

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

// minYear is the oldest model year the shop accepts.
const minYear = 1900

var (
	// ErrCarModelIsNotConstructed is returned when a CarModel instance was not
	// created through the NewCarModel or RestoreCarModel factory methods.
	ErrCarModelIsNotConstructed = errors.New("CarModel must be created via NewCarModel constructor")
)

// CarModel represents a manufacturer model that cars in the shop refer to.
//
// CarModel follows these invariants:
//   - Must have a valid unique identifier
//   - Make, model, and engine descriptions are required
//   - Year lies between 1900 and the current calendar year inclusive
//
// The year bound is checked against the clock supplied at construction time;
// it is an input-time validation, nothing recomputes it later.
type CarModel struct {
	id     kernel.UUID
	make   string
	model  string
	engine string
	year   int

	isConstructed bool
}

// NewCarModel creates a CarModel with validation. The now parameter supplies
// the current date for the upper year bound.
func NewCarModel(id kernel.UUID, carMake, model, engine string, year int, now time.Time) (*CarModel, error) {
	carModel := &CarModel{
		isConstructed: true,
	}

	if err := errors.Join(
		carModel.setID(id),
		carModel.setMake(carMake),
		carModel.setModel(model),
		carModel.setEngine(engine),
		carModel.setYear(year, now),
	); err != nil {
		return nil, err
	}

	return carModel, nil
}

// RestoreCarModel rehydrates a CarModel from persistence without re-applying
// the year upper bound, which may have moved since the row was written.
func RestoreCarModel(id kernel.UUID, carMake, model, engine string, year int) (*CarModel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &CarModel{
		id:            id,
		make:          carMake,
		model:         model,
		engine:        engine,
		year:          year,
		isConstructed: true,
	}, nil
}

// Validate ensures the CarModel was created through a factory method.
func (m *CarModel) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrCarModelIsNotConstructed
	}
	return nil
}

// ID returns the car model's unique identifier.
func (m *CarModel) ID() kernel.UUID {
	return m.id
}

// Make returns the manufacturer name.
func (m *CarModel) Make() string {
	return m.make
}

// Model returns the model name.
func (m *CarModel) Model() string {
	return m.model
}

// Engine returns the engine description.
func (m *CarModel) Engine() string {
	return m.engine
}

// Year returns the model year.
func (m *CarModel) Year() int {
	return m.year
}

func (m *CarModel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *CarModel) setMake(carMake string) error {
	if carMake == "" {
		return errs.NewValueIsRequiredError("make")
	}
	m.make = carMake
	return nil
}

func (m *CarModel) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	m.model = model
	return nil
}

func (m *CarModel) setEngine(engine string) error {
	if engine == "" {
		return errs.NewValueIsRequiredError("engine")
	}
	m.engine = engine
	return nil
}

func (m *CarModel) setYear(year int, now time.Time) error {
	maxYear := now.Year()
	if year < minYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minYear, maxYear)
	}
	m.year = year
	return nil
}
