// Package analysis contains the Analysis aggregate: a single-slot job bound
// 1:1 to an order.
//
// Trigger semantics:
//
//	(none)      ──trigger──> InProgress            (created)
//	Pending     ──trigger──> conflict              (already queued)
//	InProgress  ──trigger──> conflict              (already running)
//	Completed   ──trigger──> conflict              (use retrieval)
//	Failed      ──trigger──> InProgress            (resumed, timestamps reset)
//
// The actual computation is performed by an external collaborator; this
// aggregate only records submission, completion, and failure.
package analysis
