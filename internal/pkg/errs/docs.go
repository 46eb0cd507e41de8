// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the four error kinds the lifecycle engine reports:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: caller-supplied
//     fields failing structural constraints (validation errors)
//   - ObjectNotFoundError: a referenced object does not exist
//   - StateConflictError: a state-dependent guard failed because another actor
//     already advanced the object (e.g. two couriers racing to accept an order)
//   - ActionForbiddenError: the acting identity does not own the object
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Handlers never swallow these errors; the HTTP adapter maps each sentinel to a
// response status, so the core returns structured kinds rather than display strings.
package errs
