// Package errs provides standardized error types for the warehouse application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure kinds of the pick-and-pack workflow:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input,
//     nothing was mutated
//   - ObjectNotFoundError: a referenced item, order, table or cell does not exist
//   - InsufficientStockError: a reservation asked for more than is available
//   - ConflictError: a write lost a race against a concurrent writer and may be retried
//   - InvalidTransitionError: an order status change is not allowed from its current status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
package errs
