package queries

import (
	"context"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrganizationMembersQueryHandler retrieves organization rosters from the
// database.
type GetOrganizationMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrganizationMembersQueryHandler creates a handler for roster queries.
func NewGetOrganizationMembersQueryHandler(db *gorm.DB) GetOrganizationMembersQueryHandler {
	return GetOrganizationMembersQueryHandler{db: db}
}

// Handle executes the query. Rows cover both active members and pending join
// requests, admins first, sorted by user ID within each group.
func (h GetOrganizationMembersQueryHandler) Handle(
	ctx context.Context,
	query GetOrganizationMembersQuery,
) ([]GetOrganizationMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetOrganizationMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			role,
			status
		FROM memberships
		WHERE org_id = ? AND status IN (?, ?)
		ORDER BY role DESC, user_id
	`, query.OrgID().Bytes(), membership.StatusActive, membership.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member GetOrganizationMembersQueryResponse
		var userID uuid.UUID
		var role, status int

		if err = rows.Scan(&userID, &role, &status); err != nil {
			return nil, err
		}

		if member.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		member.Role = membership.Role(role).String()
		member.Status = membership.MemberStatus(status).String()
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
