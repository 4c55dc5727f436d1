package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as classification targets for errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAccessForbidden    = errors.New("access forbidden")
	ErrConflict           = errors.New("conflict")
	ErrDuplicateIdentity  = errors.New("duplicate identity")
	ErrStorageWrite       = errors.New("storage write failed")
	ErrStorageDelete      = errors.New("storage delete failed")
	ErrPaymentProcessing  = errors.New("payment processing failed")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError indicates that an entity could not be located.
// ParamName names the lookup parameter (e.g. "order"), ID is the value searched for.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
	}
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		sanitize(fmt.Sprintf(
			"%s: %v is %s, min value is %v, max value is %v",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max,
		)),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UnauthenticatedError indicates that a caller could not be identified.
// Credential mismatches and absent users both map here so the message
// never reveals which part of the credential pair was wrong.
type UnauthenticatedError struct {
	Message string
	Cause   error
}

// NewUnauthenticatedError creates an UnauthenticatedError without a cause.
func NewUnauthenticatedError(message string) *UnauthenticatedError {
	return &UnauthenticatedError{Message: message}
}

// NewUnauthenticatedErrorWithCause creates an UnauthenticatedError wrapping an underlying cause.
func NewUnauthenticatedErrorWithCause(message string, cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Message: message, Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Message)), e.Cause)
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// AccessForbiddenError indicates an authenticated caller lacking the
// required role or resource ownership.
type AccessForbiddenError struct {
	Message string
	Cause   error
}

// NewAccessForbiddenError creates an AccessForbiddenError without a cause.
func NewAccessForbiddenError(message string) *AccessForbiddenError {
	return &AccessForbiddenError{Message: message}
}

// NewAccessForbiddenErrorWithCause creates an AccessForbiddenError wrapping an underlying cause.
func NewAccessForbiddenErrorWithCause(message string, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{Message: message, Cause: cause}
}

func (e *AccessForbiddenError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Message)), e.Cause)
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// ConflictError indicates a state transition that is invalid in the
// entity's current state, or a redundant concurrent operation.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Message)), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// DuplicateIdentityError indicates a registration attempt reusing an
// identity attribute that must be unique.
type DuplicateIdentityError struct {
	Field string
	Value string
}

// NewDuplicateIdentityError creates a DuplicateIdentityError for the given identity field.
func NewDuplicateIdentityError(field, value string) *DuplicateIdentityError {
	return &DuplicateIdentityError{Field: field, Value: value}
}

func (e *DuplicateIdentityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrDuplicateIdentity, e.Field, e.Value))
}

func (e *DuplicateIdentityError) Unwrap() error {
	return ErrDuplicateIdentity
}

// StorageWriteError indicates a failed write to the byte storage collaborator.
type StorageWriteError struct {
	Key   string
	Cause error
}

// NewStorageWriteError creates a StorageWriteError for the given storage key.
func NewStorageWriteError(key string, cause error) *StorageWriteError {
	return &StorageWriteError{Key: key, Cause: cause}
}

func (e *StorageWriteError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrStorageWrite, e.Key)), e.Cause)
}

func (e *StorageWriteError) Unwrap() error {
	return ErrStorageWrite
}

// StorageDeleteError indicates a failed delete in the byte storage collaborator.
type StorageDeleteError struct {
	Key   string
	Cause error
}

// NewStorageDeleteError creates a StorageDeleteError for the given storage key.
func NewStorageDeleteError(key string, cause error) *StorageDeleteError {
	return &StorageDeleteError{Key: key, Cause: cause}
}

func (e *StorageDeleteError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrStorageDelete, e.Key)), e.Cause)
}

func (e *StorageDeleteError) Unwrap() error {
	return ErrStorageDelete
}

// PaymentProcessingError wraps a failure reported by the external payment
// processor, preserving the processor's message for the caller.
type PaymentProcessingError struct {
	Message string
	Cause   error
}

// NewPaymentProcessingError creates a PaymentProcessingError without a cause.
func NewPaymentProcessingError(message string) *PaymentProcessingError {
	return &PaymentProcessingError{Message: message}
}

// NewPaymentProcessingErrorWithCause creates a PaymentProcessingError wrapping an underlying cause.
func NewPaymentProcessingErrorWithCause(message string, cause error) *PaymentProcessingError {
	return &PaymentProcessingError{Message: message, Cause: cause}
}

func (e *PaymentProcessingError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrPaymentProcessing, e.Message)), e.Cause)
}

func (e *PaymentProcessingError) Unwrap() error {
	return ErrPaymentProcessing
}
