package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrTriggerAnalysisCommandIsNotConstructed = errors.New(
	"TriggerAnalysisCommand must be created via NewTriggerAnalysisCommand constructor",
)

// TriggerAnalysisCommand represents an operator's request to start the
// analysis for an order. The analysis identifier is used only when no
// analysis exists yet; re-triggering a failed analysis reuses the
// existing one.
type TriggerAnalysisCommand struct { //nolint:recvcheck //using for validation
	analysisID kernel.UUID
	orderID    kernel.UUID
	principal  user.Principal

	guard guard.ConstructorGuard
}

// NewTriggerAnalysisCommand creates a command to trigger an analysis.
func NewTriggerAnalysisCommand(
	analysisID, orderID kernel.UUID,
	principal user.Principal,
) (TriggerAnalysisCommand, error) {
	cmd := TriggerAnalysisCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAnalysisID(analysisID),
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return TriggerAnalysisCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TriggerAnalysisCommand) Validate() error {
	return c.guard.Validate(ErrTriggerAnalysisCommandIsNotConstructed)
}

// AnalysisID returns the identifier assigned to a newly created analysis.
func (c TriggerAnalysisCommand) AnalysisID() kernel.UUID {
	return c.analysisID
}

// OrderID returns the identifier of the order to analyze.
func (c TriggerAnalysisCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the caller's identity.
func (c TriggerAnalysisCommand) Principal() user.Principal {
	return c.principal
}

func (c *TriggerAnalysisCommand) setAnalysisID(analysisID kernel.UUID) error {
	if err := analysisID.Validate(); err != nil {
		return err
	}

	c.analysisID = analysisID
	return nil
}

func (c *TriggerAnalysisCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TriggerAnalysisCommand) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
