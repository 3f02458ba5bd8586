// Package membershiprepo provides data transfer objects and mapping functions
// for membership persistence. Memberships are keyed by the composite
// (org_id, user_id), so a user holds at most one record per organization.
package membershiprepo

import (
	"time"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"

	"github.com/google/uuid"
)

// MembershipDTO represents the database structure for persisting membership
// aggregates.
type MembershipDTO struct {
	OrgID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      int
	Status    int `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for membership entities.
func (MembershipDTO) TableName() string {
	return "memberships"
}

// fromDomain converts a membership aggregate to its database representation.
func fromDomain(m *membership.Membership) MembershipDTO {
	return MembershipDTO{
		OrgID:  m.OrgID().Bytes(),
		UserID: m.UserID().Bytes(),
		Role:   int(m.Role()),
		Status: int(m.Status()),
	}
}

// toDomain converts a database DTO to a membership aggregate using
// RestoreMembership.
func toDomain(dto MembershipDTO) (*membership.Membership, error) {
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return membership.RestoreMembership(
		orgID, userID, membership.Role(dto.Role), membership.MemberStatus(dto.Status))
}
