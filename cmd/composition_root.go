package cmd

import (
	"log/slog"

	"orderflow/internal/adapters/out/export"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/auditrepo"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	auditSink  ports.AuditSink
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		auditSink:  auditrepo.NewGormAuditSink(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.auditSink, c.logger)
}

func (c *CompositionRoot) CreateBulkUpdateOrdersCommandHandler() commands.BulkUpdateOrdersCommandHandler {
	return commands.NewBulkUpdateOrdersCommandHandler(
		c.CreateUpdateOrderStatusCommandHandler(),
		c.config.BulkPerOrderTimeout,
	)
}

func (c *CompositionRoot) CreateProcessRefundCommandHandler() commands.ProcessRefundCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessRefundCommandHandler(f, c.auditSink, c.logger)
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReceiptCommandHandler(f, c.auditSink, c.logger)
}

func (c *CompositionRoot) CreateCancelCustomerOrderCommandHandler() commands.CancelCustomerOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelCustomerOrderCommandHandler(f, c.auditSink, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGenerateReportQueryHandler() queries.GenerateReportQueryHandler {
	return queries.NewGenerateReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGenerateReportQueryHandler(),
		export.NewCSVReportExporter(c.config.ExportDirectory),
		c.config.ExportSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
