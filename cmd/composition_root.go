package cmd

import (
	"pathlab/internal/adapters/out/postgres"
	"pathlab/internal/core/application/usecases/commands"
	"pathlab/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateTestCommandHandler() commands.CreateTestCommandHandler {
	var f commands.TestUoWFactory = FuncTestUoWFactory(func() commands.TestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTestCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTestCommandHandler() commands.UpdateTestCommandHandler {
	var f commands.TestUoWFactory = FuncTestUoWFactory(func() commands.TestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTestCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelExpiredOrdersCommandHandler() commands.CancelExpiredOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelExpiredOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateResultCommandHandler() commands.CreateResultCommandHandler {
	var f commands.ResultUoWFactory = FuncResultUoWFactory(func() commands.ResultUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateResultCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateResultCommandHandler() commands.UpdateResultCommandHandler {
	var f commands.ResultUoWFactory = FuncResultUoWFactory(func() commands.ResultUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateResultCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteResultCommandHandler() commands.CompleteResultCommandHandler {
	var f commands.ResultUoWFactory = FuncResultUoWFactory(func() commands.ResultUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteResultCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllTestsQueryHandler() queries.GetAllTestsQueryHandler {
	return queries.NewGetAllTestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchTestsQueryHandler() queries.SearchTestsQueryHandler {
	return queries.NewSearchTestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTestByIDQueryHandler() queries.GetTestByIDQueryHandler {
	return queries.NewGetTestByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetResultsQueryHandler() queries.GetResultsQueryHandler {
	return queries.NewGetResultsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

type FuncTestUoWFactory func() commands.TestUoW

func (f FuncTestUoWFactory) Create() commands.TestUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncResultUoWFactory func() commands.ResultUoW

func (f FuncResultUoWFactory) Create() commands.ResultUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
