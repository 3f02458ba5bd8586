package membership

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"
	"tacoshare/internal/pkg/guard"
)

var (
	// ErrMembershipIsNotConstructed is returned when using an improperly
	// initialized Membership.
	ErrMembershipIsNotConstructed = errors.New("Membership must be created via its factory methods")
)

// Membership is one member's record within an organization, keyed by the
// (orgID, userID) pair. A membership is either a pending join request or an
// active member, carrying a role in both states.
//
// Business rules:
//   - A join request always starts as a Pending Member; roles are granted
//     after acceptance
//   - Accepting keeps the role unchanged
//   - Role changes require an Active membership
type Membership struct {
	orgID  kernel.UUID
	userID kernel.UUID
	role   Role
	status MemberStatus

	guard guard.ConstructorGuard
}

// NewJoinRequest creates the membership a user gets by asking to join: a
// pending record with the regular member role.
func NewJoinRequest(orgID kernel.UUID, userID kernel.UUID) (*Membership, error) {
	return newMembership(orgID, userID, RoleMember, StatusPending)
}

// NewDirectMembership creates a membership with an explicit role and status,
// used when an admin adds a user without the request/accept round trip.
func NewDirectMembership(orgID kernel.UUID, userID kernel.UUID, role Role, status MemberStatus) (*Membership, error) {
	return newMembership(orgID, userID, role, status)
}

// RestoreMembership reconstructs a membership from persistence.
func RestoreMembership(orgID kernel.UUID, userID kernel.UUID, role Role, status MemberStatus) (*Membership, error) {
	return newMembership(orgID, userID, role, status)
}

func newMembership(orgID kernel.UUID, userID kernel.UUID, role Role, status MemberStatus) (*Membership, error) {
	membership := &Membership{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		membership.setOrgID(orgID),
		membership.setUserID(userID),
		membership.setRole(role),
		membership.setStatus(status),
	); err != nil {
		return nil, err
	}

	return membership, nil
}

// Validate ensures the Membership instance was properly constructed.
func (m *Membership) Validate() error {
	if m == nil {
		return ErrMembershipIsNotConstructed
	}
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}

// IsEqual compares two memberships by their composite key.
func (m *Membership) IsEqual(other *Membership) bool {
	return other != nil && m.orgID.IsEqual(other.orgID) && m.userID.IsEqual(other.userID)
}

// OrgID returns the organization identifier.
func (m *Membership) OrgID() kernel.UUID {
	return m.orgID
}

// UserID returns the member's user identifier.
func (m *Membership) UserID() kernel.UUID {
	return m.userID
}

// Role returns the member's role.
func (m *Membership) Role() Role {
	return m.role
}

// Status returns the membership lifecycle status.
func (m *Membership) Status() MemberStatus {
	return m.status
}

// IsPending reports whether this is a join request awaiting approval.
func (m *Membership) IsPending() bool {
	return m.status == StatusPending
}

// IsActiveAdmin reports whether the member is an active admin, the condition
// the bootstrap repair counts.
func (m *Membership) IsActiveAdmin() bool {
	return m.status == StatusActive && m.role == RoleAdmin
}

// Accept confirms a pending join request. The role is kept as-is; accepting
// an already-active membership is a conflict.
func (m *Membership) Accept() error {
	if m.status != StatusPending {
		return errs.NewConflictError("membership", "is not a pending join request")
	}
	m.status = StatusActive
	return nil
}

// ChangeRole assigns a new role to an active member. Pending join requests
// cannot carry elevated roles.
func (m *Membership) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if m.status != StatusActive {
		return errs.NewConflictError("membership", "is not active")
	}
	m.role = role
	return nil
}

func (m *Membership) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	m.orgID = orgID
	return nil
}

func (m *Membership) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	m.userID = userID
	return nil
}

func (m *Membership) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}

func (m *Membership) setStatus(status MemberStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}
