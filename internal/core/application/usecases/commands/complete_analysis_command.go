package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrCompleteAnalysisCommandIsNotConstructed = errors.New(
	"CompleteAnalysisCommand must be created via NewCompleteAnalysisCommand constructor",
)

// CompleteAnalysisCommand represents the analysis collaborator reporting
// an outcome for a running analysis. Issued by the completion job, not by
// an HTTP caller, so it carries no principal.
type CompleteAnalysisCommand struct { //nolint:recvcheck //using for validation
	analysisID kernel.UUID
	result     string
	succeeded  bool

	guard guard.ConstructorGuard
}

// NewCompleteAnalysisCommand creates a command to finish an analysis.
// A successful completion must carry a non-empty result payload.
func NewCompleteAnalysisCommand(analysisID kernel.UUID, result string, succeeded bool) (CompleteAnalysisCommand, error) {
	cmd := CompleteAnalysisCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAnalysisID(analysisID),
		cmd.setOutcome(result, succeeded),
	); err != nil {
		return CompleteAnalysisCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAnalysisCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAnalysisCommandIsNotConstructed)
}

// AnalysisID returns the identifier of the analysis to finish.
func (c CompleteAnalysisCommand) AnalysisID() kernel.UUID {
	return c.analysisID
}

// Result returns the analysis result payload.
func (c CompleteAnalysisCommand) Result() string {
	return c.result
}

// Succeeded reports whether the analysis finished successfully.
func (c CompleteAnalysisCommand) Succeeded() bool {
	return c.succeeded
}

func (c *CompleteAnalysisCommand) setAnalysisID(analysisID kernel.UUID) error {
	if err := analysisID.Validate(); err != nil {
		return err
	}

	c.analysisID = analysisID
	return nil
}

func (c *CompleteAnalysisCommand) setOutcome(result string, succeeded bool) error {
	if succeeded && result == "" {
		return errs.NewValueIsRequiredError("result")
	}

	c.result = result
	c.succeeded = succeeded
	return nil
}
