// Package errs provides standardized error types for the pathlab application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectConflictError: For when a concurrent writer lost a race on an object
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel families map directly onto the workflow engine's failure
// kinds: ErrValueIsRequired/ErrValueIsInvalid/ErrValueIsOutOfRange classify
// as validation failures, ErrObjectNotFound as missing references, and
// ErrObjectConflict as optimistic-concurrency losses. Callers classify with
// errors.Is against the sentinels rather than matching concrete types.
package errs
