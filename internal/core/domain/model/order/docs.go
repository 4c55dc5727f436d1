// Package order contains the Order aggregate and its status state machine.
//
// State transitions:
//
//	Pending ────┬──> Processing ──┬──> Completed
//	            │        │        │
//	            ├──> Paid ────────┤
//	            │        │        │
//	            └──> Cancelled <──┘
//
// Pending and Processing orders may be paid directly; Paid orders may still
// be completed (fulfilment) or cancelled (refund handling is a payment
// concern). Completed and Cancelled are terminal.
package order
