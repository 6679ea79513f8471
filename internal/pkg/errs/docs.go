// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error kinds surfaced by the order lifecycle:
//   - ObjectNotFoundError: a referenced object does not exist
//   - ValueIsInvalidError: a value does not satisfy its constraints
//   - ValueIsRequiredError: a required value is missing or blank
//   - ActorForbiddenError: the acting party lacks the required role
//   - InvalidTransitionError: the requested status change is not in the legal table
//   - VersionConflictError: a concurrent writer won the optimistic lock; retryable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrActorForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Boundaries (HTTP adapter, jobs) translate these kinds into transport codes
// without inspecting message text.
package errs
