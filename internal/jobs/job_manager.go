package jobs

import (
	"fmt"
	"log/slog"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	analysisCompletionJob *AnalysisCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	completeAnalysisHandler commands.CompleteAnalysisCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		analysisCompletionJob: NewAnalysisCompletionJob(uowFactory, completeAnalysisHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.analysisCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start analysis completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.analysisCompletionJob.Stop()
}
