// Package services provides domain services that implement business rules
// spanning multiple aggregates in the order management system.
//
// The package includes:
//   - AccessPolicy: A domain service deciding whether a principal may act on a resource
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
