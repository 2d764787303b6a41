// Package errs provides the typed value errors used by the order-taking domain.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value violates a length or pattern rule
//   - ValueIsOutOfRangeError: a number lies outside its inclusive bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - A struct type carrying the parameter name and details
//   - Constructor functions with and without cause
//
// Callers classify failures with errors.Is against the sentinels and read
// details with errors.As.
package errs
