// Package errs provides the closed set of typed errors used across the
// order lifecycle core. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// Error kinds:
//   - ObjectNotFoundError: an order (or other object) does not exist
//   - ValueIsRequiredError: a required payload field is missing
//   - ValueIsInvalidError: a payload field is malformed
//   - ValueIsOutOfRangeError: a numeric field is outside its bounds
//   - VersionIsInvalidError: a concurrent write to the same aggregate was rejected
//   - InvalidTransitionError: an action is not legal from the current order status
//   - RefundAmountExceededError: a refund request above the order total
//
// Each kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrInvalidTransition)
//   - a struct type carrying error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers branch on kind via errors.Is against the sentinels, never on
// message strings.
package errs
