package jobs

import (
	"fmt"
	"log/slog"

	"deliverylink/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	codeCleanupJob *CodeCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(codes ports.DeliveryCodeRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		codeCleanupJob: NewCodeCleanupJob(codes, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.codeCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery code cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.codeCleanupJob.Stop()
}
