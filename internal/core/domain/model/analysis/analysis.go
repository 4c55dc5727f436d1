package analysis

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

// ErrAnalysisIsNotConstructed is returned when an Analysis instance was not
// created through the NewAnalysis or RestoreAnalysis factory functions.
var ErrAnalysisIsNotConstructed = errors.New("Analysis must be created via NewAnalysis or RestoreAnalysis")

// Analysis is the single analysis job slot of an order. At most one
// Analysis exists per order; the persistence layer enforces this with a
// uniqueness constraint on the order identifier.
type Analysis struct {
	id          kernel.UUID
	orderID     kernel.UUID
	status      Status
	result      string
	startedAt   time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewAnalysis creates an Analysis in InProgress status with startedAt set
// to now. Triggering is a submission: the result arrives later through
// Complete or Fail.
func NewAnalysis(id, orderID kernel.UUID) (*Analysis, error) {
	a := &Analysis{
		status:    InProgress,
		startedAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAnalysis reconstructs an Analysis from persistence.
func RestoreAnalysis(
	id, orderID kernel.UUID,
	status Status,
	result string,
	startedAt time.Time,
	completedAt *time.Time,
) (*Analysis, error) {
	a := &Analysis{
		result:      result,
		startedAt:   startedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Analysis was created through a factory function.
func (a *Analysis) Validate() error {
	if a == nil {
		return ErrAnalysisIsNotConstructed
	}
	return a.guard.Validate(ErrAnalysisIsNotConstructed)
}

// ID returns the analysis identifier.
func (a *Analysis) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the owning order.
func (a *Analysis) OrderID() kernel.UUID {
	return a.orderID
}

// Status returns the job status.
func (a *Analysis) Status() Status {
	return a.status
}

// Result returns the result payload of a completed analysis.
func (a *Analysis) Result() string {
	return a.result
}

// StartedAt returns when the current job run was submitted.
func (a *Analysis) StartedAt() time.Time {
	return a.startedAt
}

// CompletedAt returns when the job finished, or nil while it is running.
func (a *Analysis) CompletedAt() *time.Time {
	return a.completedAt
}

// Resume re-triggers a failed analysis: status returns to InProgress,
// startedAt is reset to now, and the completion timestamp and stale result
// are cleared. Only Failed analyses can be resumed.
func (a *Analysis) Resume() error {
	switch {
	case a.status.IsActive():
		return errs.NewConflictError("analysis already in progress for this order")
	case a.status == Completed:
		return errs.NewConflictError("analysis already completed for this order, retrieve it instead")
	}

	a.status = InProgress
	a.startedAt = time.Now().UTC()
	a.completedAt = nil
	a.result = ""
	return nil
}

// Complete records a successful result. Only active jobs can complete.
func (a *Analysis) Complete(result string) error {
	if !a.status.IsActive() {
		return errs.NewConflictError("analysis is not running")
	}

	now := time.Now().UTC()
	a.status = Completed
	a.result = result
	a.completedAt = &now
	return nil
}

// Fail records an unsuccessful run. Only active jobs can fail.
func (a *Analysis) Fail() error {
	if !a.status.IsActive() {
		return errs.NewConflictError("analysis is not running")
	}

	now := time.Now().UTC()
	a.status = Failed
	a.completedAt = &now
	return nil
}

func (a *Analysis) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Analysis) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Analysis) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
