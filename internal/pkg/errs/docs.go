// Package errs provides standardized error types for the autoservice
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the system:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError / ValueIsOutOfRangeError: a value failed validation
//   - ObjectNotFoundError: a referenced object does not exist
//   - NotAuthorizedError: the actor does not own the resource it mutates
//   - NotAuthenticatedError: no identity present where one is required
//   - ThrottledError: an operation was rejected by a rate limit
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a status code. None of these errors is fatal
// to the process.
package errs
