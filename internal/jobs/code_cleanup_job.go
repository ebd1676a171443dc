package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverylink/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CodeCleanupJob periodically removes expired delivery confirmation codes.
// Codes stay valid for ten minutes after issue, so a sweep every few minutes
// keeps the table from accumulating stale rows without racing active
// confirmations.
type CodeCleanupJob struct {
	codes  ports.DeliveryCodeRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCodeCleanupJob creates a new job for sweeping expired delivery codes.
func NewCodeCleanupJob(codes ports.DeliveryCodeRepository, logger *slog.Logger) *CodeCleanupJob {
	return &CodeCleanupJob{
		codes:  codes,
		cron:   cron.New(),
		logger: logger.With("component", "code_cleanup_job"),
	}
}

// Start begins the cleanup job, running every five minutes.
func (j *CodeCleanupJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		removed, err := j.codes.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery code cleanup failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed expired delivery codes", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery code cleanup job started (running every five minutes)")
	return nil
}

// Stop stops the cleanup job.
func (j *CodeCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery code cleanup job stopped")
}
