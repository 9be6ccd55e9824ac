package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	countOverdueOrdersHandler queries.CountOverdueOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueOrdersJob: NewOverdueOrdersJob(countOverdueOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
}
