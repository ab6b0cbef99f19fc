package cmd

import (
	"autoservice/internal/adapters/out/notify"
	"autoservice/internal/adapters/out/postgres"
	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewLogNotifier(log.New("notify")),
	}
}

func (c *CompositionRoot) Notifier() ports.Notifier {
	return c.notifier
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCarUoWFactory = FuncOrderCarUoWFactory(func() commands.OrderCarUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, services.NewAccessPolicy(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, services.NewAccessPolicy(), c.notifier)
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	var f commands.OrderLineUoWFactory = FuncOrderLineUoWFactory(func() commands.OrderLineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreatePostReviewCommandHandler() commands.PostReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostReviewCommandHandler(f, services.NewReviewThrottle(), c.notifier)
}

func (c *CompositionRoot) CreateCreateCarModelCommandHandler() commands.CreateCarModelCommandHandler {
	var f commands.CarModelUoWFactory = FuncCarModelUoWFactory(func() commands.CarModelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarModelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarCommandHandler() commands.CreateCarCommandHandler {
	var f commands.CarUoWFactory = FuncCarUoWFactory(func() commands.CarUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateServiceCommandHandler() commands.CreateServiceCommandHandler {
	var f commands.ServiceUoWFactory = FuncServiceUoWFactory(func() commands.ServiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCarsQueryHandler() queries.ListCarsQueryHandler {
	return queries.NewListCarsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOverdueOrdersQueryHandler() queries.ListOverdueOrdersQueryHandler {
	return queries.NewListOverdueOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCarUoWFactory func() commands.OrderCarUoW

func (f FuncOrderCarUoWFactory) Create() commands.OrderCarUoW {
	return f()
}

type FuncOrderLineUoWFactory func() commands.OrderLineUoW

func (f FuncOrderLineUoWFactory) Create() commands.OrderLineUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncCarModelUoWFactory func() commands.CarModelUoW

func (f FuncCarModelUoWFactory) Create() commands.CarModelUoW {
	return f()
}

type FuncCarUoWFactory func() commands.CarUoW

func (f FuncCarUoWFactory) Create() commands.CarUoW {
	return f()
}

type FuncServiceUoWFactory func() commands.ServiceUoW

func (f FuncServiceUoWFactory) Create() commands.ServiceUoW {
	return f()
}
