// Package errs provides standardized error types for the group-ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the ordering core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: user-correctable
//     validation failures (missing selection, over-limit quantity, bad input)
//   - ObjectNotFoundError: a referenced aggregate or record does not exist
//   - NotAuthorizedError: the actor lacks the required role or ownership
//   - ConflictError: the target state already transitioned (already locked,
//     already a member, already pending)
//   - DependencyUnavailableError: an external collaborator is unreachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All failures in the core are values returned to the caller with one of these
// discriminated kinds; nothing raises a process-fatal error.
package errs
