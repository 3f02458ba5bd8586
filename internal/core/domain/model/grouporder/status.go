package grouporder

import (
	"fmt"

	"tacoshare/internal/pkg/errs"
)

// Status represents the lifecycle state of a group order.
//
// State transitions:
//
//	Open ──> Locked
//
// Locked is absorbing: once a group order is locked it never reopens, and a
// second lock attempt is a conflict rather than a validation failure.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: participants may submit, replace, and delete
	// their orders.
	Open

	// Locked means the cart is frozen and submitted (or awaiting submission)
	// to the fulfillment gateway. This is a final state.
	Locked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Locked:  "Locked",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:   "Open",
		Locked: "Locked",
	}
}

// Validate checks that the status is Open or Locked. Unknown and any other
// value are invalid; this guards values restored from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Lock transitions the status to Locked.
//
// Only Open may be locked. Locking an already-Locked order is a conflict so
// concurrent lock attempts surface as such to the caller; any other source
// status is invalid.
func (s Status) Lock() (Status, error) {
	switch s {
	case Open:
		return Locked, nil
	case Locked:
		return 0, errs.NewConflictError("group order", "is already locked")
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to lock", s.String()),
		)
	}
}
