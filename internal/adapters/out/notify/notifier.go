// Package notify provides the logging implementation of the Notifier port.
// Events are emitted as structured log records; a future implementation can
// fan them out to email or webhooks without touching the use cases.
package notify

import (
	"context"
	"log/slog"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
)

// SlogNotifier announces state changes through the structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// NotifyOrderStatusChanged reports an order status transition.
func (n *SlogNotifier) NotifyOrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) {
	n.logger.InfoContext(ctx, "order status changed",
		"order_id", orderID.String(),
		"from", from.String(),
		"to", to.String(),
	)
}

// NotifyAnalysisCompleted reports a finished analysis for an order.
func (n *SlogNotifier) NotifyAnalysisCompleted(ctx context.Context, orderID, analysisID kernel.UUID) {
	n.logger.InfoContext(ctx, "analysis completed",
		"order_id", orderID.String(),
		"analysis_id", analysisID.String(),
	)
}

// NotifyPaymentSucceeded reports a confirmed payment for an order.
func (n *SlogNotifier) NotifyPaymentSucceeded(ctx context.Context, orderID, paymentID kernel.UUID) {
	n.logger.InfoContext(ctx, "payment succeeded",
		"order_id", orderID.String(),
		"payment_id", paymentID.String(),
	)
}
