// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"autoservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CarModelRepoFactory provides access to the car model repository within a transaction.
	CarModelRepoFactory interface {
		CarModelRepository() ports.CarModelRepository
	}

	// CarRepoFactory provides access to the car repository within a transaction.
	CarRepoFactory interface {
		CarRepository() ports.CarRepository
	}

	// ServiceRepoFactory provides access to the service repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (update and cancel).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCarUoW manages transactions for order creation, which checks the
	// referenced car.
	OrderCarUoW interface {
		TxManager
		OrderRepoFactory
		CarRepoFactory
	}

	// OrderCarUoWFactory creates new order/car unit of work instances.
	OrderCarUoWFactory interface {
		Create() OrderCarUoW
	}

	// OrderLineUoW manages transactions for adding billed lines, which
	// snapshot the catalog service price.
	OrderLineUoW interface {
		TxManager
		OrderRepoFactory
		ServiceRepoFactory
	}

	// OrderLineUoWFactory creates new order/service unit of work instances.
	OrderLineUoWFactory interface {
		Create() OrderLineUoW
	}

	// ReviewUoW manages transactions for review submission, which checks the
	// reviewed order and the owner's recent reviews.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// CarModelUoW manages transactions for car model catalog operations.
	CarModelUoW interface {
		TxManager
		CarModelRepoFactory
	}

	// CarModelUoWFactory creates new car model unit of work instances.
	CarModelUoWFactory interface {
		Create() CarModelUoW
	}

	// CarUoW manages transactions for car registration, which checks the
	// referenced car model.
	CarUoW interface {
		TxManager
		CarRepoFactory
		CarModelRepoFactory
	}

	// CarUoWFactory creates new car unit of work instances.
	CarUoWFactory interface {
		Create() CarUoW
	}

	// ServiceUoW manages transactions for service catalog operations.
	ServiceUoW interface {
		TxManager
		ServiceRepoFactory
	}

	// ServiceUoWFactory creates new service unit of work instances.
	ServiceUoWFactory interface {
		Create() ServiceUoW
	}
)
