package membership

import (
	"fmt"

	"tacoshare/internal/pkg/errs"
)

// MemberStatus is the lifecycle state of a membership.
//
// State transitions:
//
//	Pending ──> Active
//
// Pending memberships are join requests awaiting an admin decision. Rejection
// removes the record instead of introducing a third state.
type MemberStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown MemberStatus = iota

	// StatusPending is a join request awaiting admin approval.
	StatusPending

	// StatusActive is a confirmed member.
	StatusActive
)

func getMemberStatusStrings() map[MemberStatus]string {
	return map[MemberStatus]string{
		StatusUnknown: "Unknown",
		StatusPending: "Pending",
		StatusActive:  "Active",
	}
}

// Validate checks that the status is Pending or Active.
func (s MemberStatus) Validate() error {
	if s != StatusPending && s != StatusActive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid member status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe on any value.
func (s MemberStatus) String() string {
	if str, ok := getMemberStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
