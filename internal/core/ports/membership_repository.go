package ports

import (
	"context"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"
)

// MembershipRepository defines the persistence contract for membership
// aggregates, keyed by the (orgID, userID) pair.
type MembershipRepository interface {
	// Add persists a new membership.
	Add(ctx context.Context, aggregate *membership.Membership) error

	// Update persists changes to an existing membership.
	Update(ctx context.Context, aggregate *membership.Membership) error

	// Get retrieves the membership of a user within an organization.
	// Returns an ObjectNotFound error when no record exists.
	Get(ctx context.Context, orgID kernel.UUID, userID kernel.UUID) (*membership.Membership, error)

	// GetMembers retrieves every membership of an organization, pending
	// join requests included.
	GetMembers(ctx context.Context, orgID kernel.UUID) ([]*membership.Membership, error)

	// CountActiveAdmins returns how many active admins the organization has.
	// Zero triggers the bootstrap repair.
	CountActiveAdmins(ctx context.Context, orgID kernel.UUID) (int, error)

	// Remove deletes the membership of a user within an organization.
	Remove(ctx context.Context, orgID kernel.UUID, userID kernel.UUID) error
}
