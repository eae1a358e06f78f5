package jobs

import (
	"fmt"
	"log/slog"

	"shiptrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalledShipmentJob *StalledShipmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stalledShipmentsHandler queries.GetStalledShipmentsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalledShipmentJob: NewStalledShipmentJob(stalledShipmentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalledShipmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stalled shipment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalledShipmentJob.Stop()
}
