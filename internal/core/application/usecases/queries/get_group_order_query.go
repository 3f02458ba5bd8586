// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrGetGroupOrderQueryIsNotConstructed = errors.New(
		"GetGroupOrderQuery must be created via NewGetGroupOrderQuery constructor",
	)
)

// GetGroupOrderQuery retrieves a group order header together with all
// participant orders and their totals.
type GetGroupOrderQuery struct {
	groupOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetGroupOrderQuery creates a query for a single group order.
func NewGetGroupOrderQuery(groupOrderID kernel.UUID) (GetGroupOrderQuery, error) {
	if err := groupOrderID.Validate(); err != nil {
		return GetGroupOrderQuery{}, err
	}

	return GetGroupOrderQuery{
		groupOrderID: groupOrderID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGroupOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetGroupOrderQueryIsNotConstructed)
}

// GroupOrderID returns the group order to fetch.
func (q GetGroupOrderQuery) GroupOrderID() kernel.UUID {
	return q.groupOrderID
}

// GetGroupOrderQueryResponse is the read model of a group order: the header
// plus one line per participant order and a grand total in cents.
type GetGroupOrderQueryResponse struct {
	ID              kernel.UUID
	LeaderID        kernel.UUID
	Name            string
	Status          string
	PendingDelivery bool
	TotalCents      int64
	Orders          []GroupOrderLineResponse
}

// GroupOrderLineResponse is a single participant order within the read model.
type GroupOrderLineResponse struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	TotalCents int64
}
