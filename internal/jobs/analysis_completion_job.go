package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// processingDuration is how long an analysis stays in progress before the
// job considers it done.
const processingDuration = 30 * time.Second

// AnalysisCompletionJob sweeps in-progress analyses and completes the ones
// that have been running long enough. Stands in for an external analysis
// engine posting results back.
type AnalysisCompletionJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.CompleteAnalysisCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAnalysisCompletionJob creates a job that finishes overdue analyses.
func NewAnalysisCompletionJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.CompleteAnalysisCommandHandler,
	logger *slog.Logger,
) *AnalysisCompletionJob {
	return &AnalysisCompletionJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "analysis_completion_job"),
	}
}

// Start begins the completion sweep, running every five seconds.
func (j *AnalysisCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Analysis completion sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analysis completion job started (running every 5 seconds)")
	return nil
}

// Stop stops the completion job.
func (j *AnalysisCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Analysis completion job stopped")
}

func (j *AnalysisCompletionJob) sweep(ctx context.Context) error {
	uow := j.uowFactory.Create()
	candidates, err := uow.AnalysisRepository().GetAllInProgress(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-processingDuration)
	for _, candidate := range candidates {
		if candidate.StartedAt().After(cutoff) {
			continue
		}

		result := fmt.Sprintf("analysis of order %s completed at %s",
			candidate.OrderID(), time.Now().UTC().Format(time.RFC3339))

		cmd, err := commands.NewCompleteAnalysisCommand(candidate.ID(), result, true)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build completion command",
				"analysis_id", candidate.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Failed to complete analysis",
				"analysis_id", candidate.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Analysis completed",
			"analysis_id", candidate.ID().String(),
			"order_id", candidate.OrderID().String())
	}

	return nil
}
