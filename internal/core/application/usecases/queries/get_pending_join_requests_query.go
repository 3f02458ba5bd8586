package queries

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrGetPendingJoinRequestsQueryIsNotConstructed = errors.New(
		"GetPendingJoinRequestsQuery must be created via NewGetPendingJoinRequestsQuery constructor",
	)
)

// GetPendingJoinRequestsQuery retrieves join requests awaiting an admin
// decision.
type GetPendingJoinRequestsQuery struct {
	orgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingJoinRequestsQuery creates a query for pending join requests.
func NewGetPendingJoinRequestsQuery(orgID kernel.UUID) (GetPendingJoinRequestsQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetPendingJoinRequestsQuery{}, err
	}

	return GetPendingJoinRequestsQuery{
		orgID: orgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingJoinRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingJoinRequestsQueryIsNotConstructed)
}

// OrgID returns the organization whose pending requests are fetched.
func (q GetPendingJoinRequestsQuery) OrgID() kernel.UUID {
	return q.orgID
}

// GetPendingJoinRequestsQueryResponse is one pending join request.
type GetPendingJoinRequestsQueryResponse struct {
	UserID kernel.UUID
}
