package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/jobs"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("refresh without deadline")
	}
	return r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogRefreshJob(t *testing.T) {
	t.Run("should refresh on schedule", func(t *testing.T) {
		refresher := &countingRefresher{}
		job := jobs.NewCatalogRefreshJob(refresher, "* * * * * *", time.Second, discardLogger())

		require.NoError(t, job.Start())
		defer job.Stop()

		assert.Eventually(t, func() bool { return refresher.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("should keep running after a failed refresh", func(t *testing.T) {
		refresher := &countingRefresher{err: errors.New("db down")}
		job := jobs.NewCatalogRefreshJob(refresher, "* * * * * *", time.Second, discardLogger())

		require.NoError(t, job.Start())
		defer job.Stop()

		assert.Eventually(t, func() bool { return refresher.calls.Load() > 1 }, 4*time.Second, 50*time.Millisecond)
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewCatalogRefreshJob(&countingRefresher{}, "every minute", time.Second, discardLogger())

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should start with the default schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(&countingRefresher{}, "", discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should report a job that cannot start", func(t *testing.T) {
		manager := jobs.NewJobManager(&countingRefresher{}, "not a schedule", discardLogger())

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog refresh job")
	})
}
