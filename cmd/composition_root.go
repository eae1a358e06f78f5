package cmd

import (
	"log/slog"

	"shiptrack/internal/adapters/out/notify"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *notify.ChannelDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	dispatcher := notify.NewChannelDispatcher(
		config.NotifyQueueSize,
		map[ports.NotificationChannel]notify.Sender{
			ports.ChannelEmail: notify.NewEmailSender(
				config.SMTPHost, config.SMTPPort,
				config.SMTPUser, config.SMTPPassword, config.SMTPFrom,
			),
			ports.ChannelSMS: notify.NewSMSGatewaySender(
				config.SMSGatewayURL, config.SMSGatewayAPIKey,
			),
		},
		logger,
	)
	dispatcher.Start(config.NotifyWorkers)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Close drains the notification queue and stops the delivery workers.
func (c *CompositionRoot) Close() {
	c.dispatcher.Stop()
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingEventCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateSignupForAlertsCommandHandler() commands.SignupForAlertsCommandHandler {
	return commands.NewSignupForAlertsCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledShipmentsQueryHandler() queries.GetStalledShipmentsQueryHandler {
	return queries.NewGetStalledShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStalledShipmentsQueryHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
