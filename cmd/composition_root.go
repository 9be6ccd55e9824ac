package cmd

import (
	"log/slog"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddServiceCommandHandler() commands.AddServiceCommandHandler {
	var f commands.ServiceUoWFactory = FuncServiceUoWFactory(func() commands.ServiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateServiceCommandHandler() commands.UpdateServiceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteServiceCommandHandler() commands.DeleteServiceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteServiceCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSignupCommandHandler() commands.SignupCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignupCommandHandler(f, services.NewPasswordVerifier())
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateGetServicesQueryHandler() queries.GetServicesQueryHandler {
	return queries.NewGetServicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceQueryHandler() queries.GetServiceQueryHandler {
	return queries.NewGetServiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, services.NewPasswordVerifier())
}

func (c *CompositionRoot) CreateCountOverdueOrdersQueryHandler() queries.CountOverdueOrdersQueryHandler {
	return queries.NewCountOverdueOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateAddServiceCommandHandler(),
		c.CreateUpdateServiceCommandHandler(),
		c.CreateDeleteServiceCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateSignupCommandHandler(),
		c.CreateUpdateAddressCommandHandler(),
		c.CreateGetServicesQueryHandler(),
		c.CreateGetServiceQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateLoginQueryHandler(),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOverdueOrdersQueryHandler(), logger)
}

type FuncServiceUoWFactory func() commands.ServiceUoW

func (f FuncServiceUoWFactory) Create() commands.ServiceUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
