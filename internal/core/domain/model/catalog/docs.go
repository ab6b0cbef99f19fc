// Package catalog provides the administrative reference entities of the
// autoservice domain: car models, registered cars, and the service price
// catalog.
//
// The package includes:
//   - CarModel: make/model/engine/year, with the year bounded to 1900 through
//     the current calendar year
//   - Car: a customer vehicle referencing exactly one CarModel, identified to
//     staff by plate number and VIN
//   - Service: a fixed catalog item with a name and a decimal price
//
// Catalog entities are created and edited by staff. Orders reference cars,
// and order lines snapshot service prices at the time the line is added, so
// later catalog price changes never affect historical orders.
package catalog
