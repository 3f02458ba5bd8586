// Package grouporderrepo provides data transfer objects and mapping functions
// for group order persistence. This package implements the repository pattern
// for the group order aggregate, handling the conversion between domain
// entities and database representations.
package grouporderrepo

import (
	"encoding/json"
	"time"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// GroupOrderDTO represents the database structure for persisting group order
// aggregates. The locked snapshot is stored as a JSONB blob so retries can
// resubmit the exact payload of the first attempt.
type GroupOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaderID        uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	WindowStart     time.Time
	WindowEnd       time.Time
	Status          int    `gorm:"index"`
	PendingDelivery bool   `gorm:"index"`
	Snapshot        []byte `gorm:"type:jsonb"`
	ExternalOrderID string
	TransactionID   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for group order entities.
func (GroupOrderDTO) TableName() string {
	return "group_orders"
}

// fromDomain converts a group order aggregate to its database representation.
func fromDomain(groupOrder *grouporder.GroupOrder) (GroupOrderDTO, error) {
	var snapshot []byte
	if s := groupOrder.LockedSnapshot(); s != nil {
		raw, err := json.Marshal(s)
		if err != nil {
			return GroupOrderDTO{}, err
		}
		snapshot = raw
	}

	return GroupOrderDTO{
		ID:              groupOrder.ID().Bytes(),
		LeaderID:        groupOrder.LeaderID().Bytes(),
		Name:            groupOrder.Name(),
		WindowStart:     groupOrder.Window().Start(),
		WindowEnd:       groupOrder.Window().End(),
		Status:          int(groupOrder.Status()),
		PendingDelivery: groupOrder.IsPendingDelivery(),
		Snapshot:        snapshot,
		ExternalOrderID: groupOrder.ExternalOrderID(),
		TransactionID:   groupOrder.TransactionID(),
	}, nil
}

// toDomain converts a database DTO to a group order aggregate using
// RestoreGroupOrder.
func toDomain(dto GroupOrderDTO) (*grouporder.GroupOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	leaderID, err := kernel.UUIDFromBytes(dto.LeaderID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	var snapshot *grouporder.Snapshot
	if len(dto.Snapshot) > 0 {
		var s grouporder.Snapshot
		if err = json.Unmarshal(dto.Snapshot, &s); err != nil {
			return nil, err
		}
		snapshot = &s
	}

	return grouporder.RestoreGroupOrder(
		id,
		leaderID,
		dto.Name,
		window,
		grouporder.Status(dto.Status),
		dto.PendingDelivery,
		snapshot,
		dto.ExternalOrderID,
		dto.TransactionID,
	)
}
