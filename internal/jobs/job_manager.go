package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

const catalogRefreshTimeout = 30 * time.Second

// JobManager starts and stops every scheduled job of the application.
type JobManager struct {
	catalogRefreshJob *CatalogRefreshJob
}

func NewJobManager(refresher CatalogRefresher, catalogRefreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		catalogRefreshJob: NewCatalogRefreshJob(refresher, catalogRefreshSchedule, catalogRefreshTimeout, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogRefreshJob.Stop()
}
