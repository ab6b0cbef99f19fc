package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors used as the unwrap targets for every error type in this
// package. Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrThrottled         = errors.New("too many requests")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
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

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// permitted bounds.
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

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the underlying validation failure.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s (cause: %s)",
			ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// underlying failure.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NotAuthorizedError indicates that the acting user is not permitted to
// perform an operation on a resource, typically because they do not own it.
// The operation must be refused before any state change.
type NotAuthorizedError struct {
	ResourceName string
	ID           any
	Cause        error
}

// NewNotAuthorizedError creates a NotAuthorizedError without a cause.
func NewNotAuthorizedError(resourceName string, id any) *NotAuthorizedError {
	return &NotAuthorizedError{ResourceName: resourceName, ID: id}
}

// NewNotAuthorizedErrorWithCause creates a NotAuthorizedError wrapping an
// underlying cause.
func NewNotAuthorizedErrorWithCause(resourceName string, id any, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{ResourceName: resourceName, ID: id, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrNotAuthorized, e.ResourceName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrNotAuthorized, e.ResourceName, sanitize(e.ID))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// NotAuthenticatedError indicates that no user identity was present where one
// is required.
type NotAuthenticatedError struct {
	Action string
	Cause  error
}

// NewNotAuthenticatedError creates a NotAuthenticatedError without a cause.
func NewNotAuthenticatedError(action string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Action: action}
}

// NewNotAuthenticatedErrorWithCause creates a NotAuthenticatedError wrapping
// an underlying cause, typically a token parsing failure.
func NewNotAuthenticatedErrorWithCause(action string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Action: action, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotAuthenticated, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Action)
}

func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// ThrottledError indicates that an operation was rejected by a rate limit.
// Nothing is persisted when a ThrottledError is returned.
type ThrottledError struct {
	ParamName string
	Window    time.Duration
	Cause     error
}

// NewThrottledError creates a ThrottledError for the given rate-limit window.
func NewThrottledError(paramName string, window time.Duration) *ThrottledError {
	return &ThrottledError{ParamName: paramName, Window: window}
}

// NewThrottledErrorWithCause creates a ThrottledError wrapping an underlying
// cause.
func NewThrottledErrorWithCause(paramName string, window time.Duration, cause error) *ThrottledError {
	return &ThrottledError{ParamName: paramName, Window: window, Cause: cause}
}

func (e *ThrottledError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (window: %s) (cause: %s)", ErrThrottled, e.ParamName, e.Window, e.Cause)
	}
	return fmt.Sprintf("%s: %s (window: %s)", ErrThrottled, e.ParamName, e.Window)
}

func (e *ThrottledError) Unwrap() error {
	return ErrThrottled
}
