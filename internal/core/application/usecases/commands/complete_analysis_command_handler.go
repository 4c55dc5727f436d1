package commands

import (
	"context"

	"docflow/internal/core/ports"
)

// CompleteAnalysisCommandHandler records the outcome of a running
// analysis. Attached documents move to analyzed or failed together with
// the analysis, in the same transaction.
type CompleteAnalysisCommandHandler struct {
	uowFactory AnalysisUoWFactory
	notifier   ports.Notifier
}

// NewCompleteAnalysisCommandHandler creates a handler for completion operations.
func NewCompleteAnalysisCommandHandler(
	uowFactory AnalysisUoWFactory,
	notifier ports.Notifier,
) CompleteAnalysisCommandHandler {
	return CompleteAnalysisCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h *CompleteAnalysisCommandHandler) Handle(ctx context.Context, cmd CompleteAnalysisCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	analysisRepo := uow.AnalysisRepository()
	running, err := analysisRepo.Get(ctx, cmd.AnalysisID())
	if err != nil {
		return err
	}

	if cmd.Succeeded() {
		err = running.Complete(cmd.Result())
	} else {
		err = running.Fail()
	}
	if err != nil {
		return err
	}

	if err = analysisRepo.Update(ctx, running); err != nil {
		return err
	}

	documentRepo := uow.DocumentRepository()
	documents, err := documentRepo.GetAllByOrderID(ctx, running.OrderID())
	if err != nil {
		return err
	}

	for _, doc := range documents {
		if cmd.Succeeded() {
			doc.MarkAnalyzed()
		} else {
			doc.MarkFailed()
		}
		if err = documentRepo.Update(ctx, doc); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Succeeded() {
		h.notifier.NotifyAnalysisCompleted(ctx, running.OrderID(), running.ID())
	}
	return nil
}
