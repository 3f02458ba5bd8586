package queries

import (
	"context"
	"database/sql"
	"errors"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGroupOrderQueryHandler retrieves group order read models from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetGroupOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetGroupOrderQueryHandler creates a handler for group order retrieval queries.
func NewGetGroupOrderQueryHandler(db *gorm.DB) GetGroupOrderQueryHandler {
	return GetGroupOrderQueryHandler{db: db}
}

// Handle executes the query. Participant order lines are sorted by ID for
// consistent output; the grand total is the sum of the line totals.
func (h GetGroupOrderQueryHandler) Handle(
	ctx context.Context,
	query GetGroupOrderQuery,
) (GetGroupOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetGroupOrderQueryResponse{}, err
	}

	var response GetGroupOrderQueryResponse
	var id, leaderID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			leader_id,
			name,
			status,
			pending_delivery
		FROM group_orders
		WHERE id = ?
	`, query.GroupOrderID().Bytes()).Row()

	err := row.Scan(&id, &leaderID, &response.Name, &status, &response.PendingDelivery)
	if errors.Is(err, sql.ErrNoRows) {
		return GetGroupOrderQueryResponse{}, errs.NewObjectNotFoundError("group order", query.GroupOrderID().String())
	}
	if err != nil {
		return GetGroupOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetGroupOrderQueryResponse{}, err
	}
	if response.LeaderID, err = kernel.UUIDFromBytes(leaderID[:]); err != nil {
		return GetGroupOrderQueryResponse{}, err
	}
	response.Status = grouporder.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			total_cents
		FROM participant_orders
		WHERE group_order_id = ?
		ORDER BY id
	`, query.GroupOrderID().Bytes()).Rows()
	if err != nil {
		return GetGroupOrderQueryResponse{}, err
	}
	defer rows.Close()

	response.Orders = make([]GroupOrderLineResponse, 0)
	for rows.Next() {
		var line GroupOrderLineResponse
		var lineID, ownerID uuid.UUID

		if err = rows.Scan(&lineID, &ownerID, &line.TotalCents); err != nil {
			return GetGroupOrderQueryResponse{}, err
		}

		if line.ID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return GetGroupOrderQueryResponse{}, err
		}
		if line.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return GetGroupOrderQueryResponse{}, err
		}

		response.TotalCents += line.TotalCents
		response.Orders = append(response.Orders, line)
	}

	if err = rows.Err(); err != nil {
		return GetGroupOrderQueryResponse{}, err
	}

	return response, nil
}
