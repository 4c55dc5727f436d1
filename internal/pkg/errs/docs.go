// Package errs provides standardized error types for the docflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of failures:
//   - Value errors raised while constructing domain objects and commands
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
//   - Workflow errors surfaced by the use cases themselves
//     (ObjectNotFoundError, UnauthenticatedError, AccessForbiddenError,
//     ConflictError, DuplicateIdentityError, StorageWriteError,
//     StorageDeleteError, PaymentProcessingError)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The presentation layer relies on the sentinels to map each failure kind
// to a stable outward signal without parsing message text.
package errs
