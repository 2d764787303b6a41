package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultCatalogRefreshSchedule runs every five minutes. The first field is seconds.
const DefaultCatalogRefreshSchedule = "0 */5 * * * *"

// CatalogRefresher reloads the cached product catalog.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshJob reloads the product catalog on a cron schedule so price
// changes reach new orders without a restart.
type CatalogRefreshJob struct {
	refresher CatalogRefresher
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob uses DefaultCatalogRefreshSchedule when schedule is empty.
// Each run is cancelled after timeout.
func NewCatalogRefreshJob(
	refresher CatalogRefresher,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *CatalogRefreshJob {
	if schedule == "" {
		schedule = DefaultCatalogRefreshSchedule
	}
	return &CatalogRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		timeout:   timeout,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

// Start fails if the schedule cannot be parsed.
func (j *CatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

func (j *CatalogRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
	}
}

// Stop waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
