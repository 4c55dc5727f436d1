package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
)

// PaymentIntent is the processor-side view of a two-phase payment.
// Status carries the processor's raw status string; the payment aggregate
// maps it onto the domain status set.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentProcessor defines the contract with the external payment provider.
// Implementations talk to the provider's HTTP API; failures surface as
// payment processing errors so callers can map them to an upstream fault.
type PaymentProcessor interface {
	// CreateIntent registers a new payment intent for the given amount.
	// The order identifier is attached as provider metadata for
	// reconciliation.
	CreateIntent(ctx context.Context, amount kernel.Money, currency string, orderID kernel.UUID) (PaymentIntent, error)

	// RetrieveIntent fetches the current state of a previously created
	// intent. Used during confirmation to learn the authoritative status.
	RetrieveIntent(ctx context.Context, intentID string) (PaymentIntent, error)
}
