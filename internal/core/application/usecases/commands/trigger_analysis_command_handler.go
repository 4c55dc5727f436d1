package commands

import (
	"context"
	"errors"

	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// TriggerOutcome tells the caller whether a trigger created a fresh
// analysis or resumed a previously failed one.
type TriggerOutcome string

const (
	// TriggerOutcomeCreated means no analysis existed and a new one was started.
	TriggerOutcomeCreated TriggerOutcome = "created"

	// TriggerOutcomeResumed means a failed analysis was restarted.
	TriggerOutcomeResumed TriggerOutcome = "resumed"
)

// TriggerAnalysisResult reports the analysis affected by a trigger.
type TriggerAnalysisResult struct {
	AnalysisID kernel.UUID
	Outcome    TriggerOutcome
}

// TriggerAnalysisCommandHandler handles analysis triggering. Exactly one
// analysis slot exists per order: triggering with no analysis creates one
// in progress, triggering over a failed analysis restarts it, and
// triggering over an active or completed analysis is a conflict. The
// check and the insert run in one transaction, with a storage-level
// uniqueness constraint as the concurrency backstop.
type TriggerAnalysisCommandHandler struct {
	uowFactory   AnalysisUoWFactory
	accessPolicy services.AccessPolicy
}

// NewTriggerAnalysisCommandHandler creates a handler for trigger operations.
func NewTriggerAnalysisCommandHandler(
	uowFactory AnalysisUoWFactory,
	accessPolicy services.AccessPolicy,
) TriggerAnalysisCommandHandler {
	return TriggerAnalysisCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the trigger command. Only operators and admins may
// trigger analyses.
func (h *TriggerAnalysisCommandHandler) Handle(
	ctx context.Context,
	cmd TriggerAnalysisCommand,
) (TriggerAnalysisResult, error) {
	if err := cmd.Validate(); err != nil {
		return TriggerAnalysisResult{}, err
	}

	if err := h.accessPolicy.Authorize(cmd.Principal(), user.RoleOperator); err != nil {
		return TriggerAnalysisResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TriggerAnalysisResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return TriggerAnalysisResult{}, err
	}

	analysisRepo := uow.AnalysisRepository()
	existing, err := analysisRepo.GetByOrderID(ctx, cmd.OrderID())
	switch {
	case err == nil:
		if err = existing.Resume(); err != nil {
			return TriggerAnalysisResult{}, err
		}
		if err = analysisRepo.Update(ctx, existing); err != nil {
			return TriggerAnalysisResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return TriggerAnalysisResult{}, err
		}
		return TriggerAnalysisResult{AnalysisID: existing.ID(), Outcome: TriggerOutcomeResumed}, nil

	case errors.Is(err, errs.ErrObjectNotFound):
		newAnalysis, newErr := analysis.NewAnalysis(cmd.AnalysisID(), cmd.OrderID())
		if newErr != nil {
			return TriggerAnalysisResult{}, newErr
		}
		if newErr = analysisRepo.Add(ctx, newAnalysis); newErr != nil {
			return TriggerAnalysisResult{}, newErr
		}
		if newErr = uow.Commit(ctx); newErr != nil {
			return TriggerAnalysisResult{}, newErr
		}
		return TriggerAnalysisResult{AnalysisID: newAnalysis.ID(), Outcome: TriggerOutcomeCreated}, nil

	default:
		return TriggerAnalysisResult{}, err
	}
}
