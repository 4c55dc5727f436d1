// Package payment contains the Payment aggregate, bound 1:1 to an order
// and reconciled against an external payment processor. The processor's
// reported status is authoritative: the local record mirrors it on every
// confirmation attempt, including non-success outcomes.
package payment
