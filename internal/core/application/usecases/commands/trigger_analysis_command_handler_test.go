package commands_test

import (
	"testing"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredAnalysis(t *testing.T, orderID kernel.UUID, status analysis.Status) *analysis.Analysis {
	t.Helper()
	var completedAt *time.Time
	result := ""
	if status == analysis.Completed {
		now := time.Now().UTC()
		completedAt = &now
		result = `{"verdict":"ok"}`
	}
	a, err := analysis.RestoreAnalysis(kernel.NewUUID(), orderID, status, result, time.Now().UTC(), completedAt)
	require.NoError(t, err)
	return a
}

func TestTriggerAnalysisCommandHandler_Handle_CreatesFirstAnalysis(t *testing.T) {
	ctx := t.Context()
	owningOrder := restoredOrder(t, kernel.NewUUID(), order.Pending)
	analysisID := kernel.NewUUID()

	cmd, err := commands.NewTriggerAnalysisCommand(analysisID, owningOrder.ID(), operatorPrincipal())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	analysisRepo := new(MockAnalysisRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("analysis", owningOrder.ID())).Once(),
		analysisRepo.On("Add", mock.Anything, mock.AnythingOfType("*analysis.Analysis")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAnalysisUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTriggerAnalysisCommandHandler(factory, services.NewAccessPolicy())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, commands.TriggerOutcomeCreated, result.Outcome)
	require.True(t, result.AnalysisID.IsEqual(analysisID))
	added := analysisRepo.Calls[1].Arguments.Get(1).(*analysis.Analysis)
	require.Equal(t, analysis.InProgress, added.Status())
	uow.AssertExpectations(t)
}

func TestTriggerAnalysisCommandHandler_Handle_ResumesFailedAnalysis(t *testing.T) {
	ctx := t.Context()
	owningOrder := restoredOrder(t, kernel.NewUUID(), order.Pending)
	failed := restoredAnalysis(t, owningOrder.ID(), analysis.Failed)

	cmd, err := commands.NewTriggerAnalysisCommand(kernel.NewUUID(), owningOrder.ID(), operatorPrincipal())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	analysisRepo := new(MockAnalysisRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).Return(failed, nil).Once(),
		analysisRepo.On("Update", mock.Anything, failed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAnalysisUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTriggerAnalysisCommandHandler(factory, services.NewAccessPolicy())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, commands.TriggerOutcomeResumed, result.Outcome)
	require.True(t, result.AnalysisID.IsEqual(failed.ID()))
	require.Equal(t, analysis.InProgress, failed.Status())
	require.Nil(t, failed.CompletedAt())
	uow.AssertExpectations(t)
}

func TestTriggerAnalysisCommandHandler_Handle_ConflictWhenActive(t *testing.T) {
	ctx := t.Context()
	owningOrder := restoredOrder(t, kernel.NewUUID(), order.Pending)
	active := restoredAnalysis(t, owningOrder.ID(), analysis.InProgress)

	cmd, err := commands.NewTriggerAnalysisCommand(kernel.NewUUID(), owningOrder.ID(), operatorPrincipal())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	analysisRepo := new(MockAnalysisRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).Return(active, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAnalysisUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTriggerAnalysisCommandHandler(factory, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	analysisRepo.AssertNotCalled(t, "Update")
	uow.AssertExpectations(t)
}

func TestTriggerAnalysisCommandHandler_Handle_ConflictWhenCompleted(t *testing.T) {
	ctx := t.Context()
	owningOrder := restoredOrder(t, kernel.NewUUID(), order.Pending)
	completed := restoredAnalysis(t, owningOrder.ID(), analysis.Completed)

	cmd, err := commands.NewTriggerAnalysisCommand(kernel.NewUUID(), owningOrder.ID(), operatorPrincipal())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	analysisRepo := new(MockAnalysisRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("AnalysisRepository").Return(analysisRepo).Once(),
		analysisRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).Return(completed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAnalysisUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTriggerAnalysisCommandHandler(factory, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestTriggerAnalysisCommandHandler_Handle_ForbiddenForPlainUser(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewTriggerAnalysisCommand(
		kernel.NewUUID(), kernel.NewUUID(), userPrincipal(kernel.NewUUID()))
	require.NoError(t, err)

	factory := new(MockAnalysisUoWFactory)
	h := commands.NewTriggerAnalysisCommandHandler(factory, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}
