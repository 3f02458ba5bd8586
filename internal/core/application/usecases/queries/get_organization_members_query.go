package queries

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrGetOrganizationMembersQueryIsNotConstructed = errors.New(
		"GetOrganizationMembersQuery must be created via NewGetOrganizationMembersQuery constructor",
	)
)

// GetOrganizationMembersQuery retrieves the membership roster of an
// organization: active members and pending join requests.
type GetOrganizationMembersQuery struct {
	orgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrganizationMembersQuery creates a query for an organization roster.
func NewGetOrganizationMembersQuery(orgID kernel.UUID) (GetOrganizationMembersQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetOrganizationMembersQuery{}, err
	}

	return GetOrganizationMembersQuery{
		orgID: orgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrganizationMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrganizationMembersQueryIsNotConstructed)
}

// OrgID returns the organization whose roster is fetched.
func (q GetOrganizationMembersQuery) OrgID() kernel.UUID {
	return q.orgID
}

// GetOrganizationMembersQueryResponse is one roster row.
type GetOrganizationMembersQueryResponse struct {
	UserID kernel.UUID
	Role   string
	Status string
}
