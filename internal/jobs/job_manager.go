package jobs

import (
	"fmt"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	activeOrdersReportJob *ActiveOrdersReportJob
}

// NewJobManager creates the jobs. An invalid schedule is reported here rather
// than on start.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) (*JobManager, error) {
	reportJob, err := NewActiveOrdersReportJob(getActiveOrdersHandler, reportSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", reportSchedule, err)
	}

	return &JobManager{activeOrdersReportJob: reportJob}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.activeOrdersReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start active orders report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.activeOrdersReportJob.Stop()
}
