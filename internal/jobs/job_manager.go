package jobs

import (
	"fmt"
	"log/slog"

	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueScanJob *OverdueScanJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	listOverdueOrdersHandler queries.ListOverdueOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueScanJob: NewOverdueScanJob(listOverdueOrdersHandler, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueScanJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueScanJob.Stop()
}
