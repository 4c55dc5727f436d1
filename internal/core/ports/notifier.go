package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
)

// Notifier announces noteworthy state changes to interested parties.
// Implementations must not fail the calling use case: delivery problems
// are logged and swallowed.
type Notifier interface {
	// NotifyOrderStatusChanged reports an order status transition.
	NotifyOrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status)

	// NotifyAnalysisCompleted reports a finished analysis for an order.
	NotifyAnalysisCompleted(ctx context.Context, orderID, analysisID kernel.UUID)

	// NotifyPaymentSucceeded reports a confirmed payment for an order.
	NotifyPaymentSucceeded(ctx context.Context, orderID, paymentID kernel.UUID)
}
