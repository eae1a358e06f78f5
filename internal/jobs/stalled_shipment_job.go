package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// stalledThreshold is how long a shipment may sit without a tracking update
// before the job reports it.
const stalledThreshold = 48 * time.Hour

// StalledShipmentJob periodically scans for undelivered shipments with no
// recent tracking activity and reports them in the log, so operators notice
// shipments stuck in the network.
type StalledShipmentJob struct {
	handler queries.GetStalledShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalledShipmentJob creates a job reporting stalled shipments hourly.
func NewStalledShipmentJob(handler queries.GetStalledShipmentsQueryHandler, logger *slog.Logger) *StalledShipmentJob {
	return &StalledShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stalled_shipment_job"),
	}
}

// Start begins the stalled shipment job to run at the top of every hour.
func (j *StalledShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled shipment job started (running hourly)")
	return nil
}

// Stop stops the stalled shipment job.
func (j *StalledShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled shipment job stopped")
}

func (j *StalledShipmentJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStalledShipmentsQuery(stalledThreshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stalled shipment job failed", "error", err)
		return
	}

	stalled, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stalled shipment job failed", "error", err)
		return
	}

	for _, s := range stalled {
		j.logger.WarnContext(ctx, "shipment stalled",
			"tracking_number", s.TrackingNumber,
			"status", s.Status,
			"last_location", s.CurrentLocation,
			"updated_at", s.UpdatedAt,
		)
	}
}
