// Package catalogrepo provides data transfer objects and mapping functions
// for the catalog aggregates: car models, registered cars, and billable
// services.
package catalogrepo

import (
	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarModelDTO represents the database structure for persisting car models.
type CarModelDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Make   string
	Model  string
	Engine string
	Year   int
}

// TableName specifies the database table name for car model entities.
func (CarModelDTO) TableName() string {
	return "car_models"
}

// CarDTO represents the database structure for persisting registered cars.
type CarDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarModelID  uuid.UUID `gorm:"type:uuid;index"`
	PlateNumber string    `gorm:"index"`
	VIN         string    `gorm:"column:vin;size:17"`
	OwnerName   string    `gorm:"index"`
	ImageURL    string
	Description string
}

// TableName specifies the database table name for car entities.
func (CarDTO) TableName() string {
	return "cars"
}

// ServiceDTO represents the database structure for persisting catalog
// services.
type ServiceDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for service entities.
func (ServiceDTO) TableName() string {
	return "services"
}

func carModelFromDomain(aggregate *catalog.CarModel) CarModelDTO {
	return CarModelDTO{
		ID:     aggregate.ID().Bytes(),
		Make:   aggregate.Make(),
		Model:  aggregate.Model(),
		Engine: aggregate.Engine(),
		Year:   aggregate.Year(),
	}
}

func carModelToDomain(dto CarModelDTO) (*catalog.CarModel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCarModel(id, dto.Make, dto.Model, dto.Engine, dto.Year)
}

func carFromDomain(aggregate *catalog.Car) CarDTO {
	return CarDTO{
		ID:          aggregate.ID().Bytes(),
		CarModelID:  aggregate.CarModelID().Bytes(),
		PlateNumber: aggregate.PlateNumber(),
		VIN:         aggregate.VIN(),
		OwnerName:   aggregate.OwnerName(),
		ImageURL:    aggregate.ImageURL(),
		Description: aggregate.Description(),
	}
}

func carToDomain(dto CarDTO) (*catalog.Car, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	carModelID, err := kernel.UUIDFromBytes(dto.CarModelID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCar(id, carModelID, dto.PlateNumber, dto.VIN, dto.OwnerName, dto.ImageURL, dto.Description)
}

func serviceFromDomain(aggregate *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Amount(),
	}
}

func serviceToDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreService(id, dto.Name, price)
}
