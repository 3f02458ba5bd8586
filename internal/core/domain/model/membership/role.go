package membership

import (
	"fmt"

	"tacoshare/internal/pkg/errs"
)

// Role is the permission level of a member within an organization.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleMember is a regular participant.
	RoleMember

	// RoleAdmin manages the organization: accepting and rejecting join
	// requests, changing roles, removing members.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleMember:  "Member",
		RoleAdmin:   "Admin",
	}
}

// Validate checks that the role is Member or Admin.
func (r Role) Validate() error {
	if r != RoleMember && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role. Safe on any value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
