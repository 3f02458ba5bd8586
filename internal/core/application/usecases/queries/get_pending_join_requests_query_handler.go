package queries

import (
	"context"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingJoinRequestsQueryHandler retrieves pending join requests from the
// database.
type GetPendingJoinRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingJoinRequestsQueryHandler creates a handler for pending join
// request queries.
func NewGetPendingJoinRequestsQueryHandler(db *gorm.DB) GetPendingJoinRequestsQueryHandler {
	return GetPendingJoinRequestsQueryHandler{db: db}
}

// Handle executes the query, sorted by user ID for consistent output.
func (h GetPendingJoinRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingJoinRequestsQuery,
) ([]GetPendingJoinRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingJoinRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id
		FROM memberships
		WHERE org_id = ? AND status = ?
		ORDER BY user_id
	`, query.OrgID().Bytes(), membership.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var request GetPendingJoinRequestsQueryResponse
		var userID uuid.UUID

		if err = rows.Scan(&userID); err != nil {
			return nil, err
		}

		if request.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
