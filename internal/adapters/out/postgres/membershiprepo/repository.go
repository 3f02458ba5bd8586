package membershiprepo

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMembershipRepository implements MembershipRepository using GORM.
type GormMembershipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMembershipRepository creates a new GORM membership repository.
func NewGormMembershipRepository(db *gorm.DB, tracker aggregateTracker) *GormMembershipRepository {
	return &GormMembershipRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new membership to the database.
func (r *GormMembershipRepository) Add(ctx context.Context, aggregate *membership.Membership) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Update saves an existing membership to the database.
func (r *GormMembershipRepository) Update(ctx context.Context, aggregate *membership.Membership) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MembershipDTO{}).
		Where("org_id = ? AND user_id = ?", dto.OrgID, dto.UserID).
		Updates(map[string]any{
			"role":   dto.Role,
			"status": dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Get retrieves a membership by its composite key.
func (r *GormMembershipRepository) Get(
	ctx context.Context, orgID kernel.UUID, userID kernel.UUID,
) (*membership.Membership, error) {
	if err := errors.Join(orgID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	var dto MembershipDTO
	err := r.db.WithContext(ctx).
		First(&dto, "org_id = ? AND user_id = ?", orgID.Bytes(), userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("membership", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMembers retrieves every membership record of an organization.
func (r *GormMembershipRepository) GetMembers(
	ctx context.Context, orgID kernel.UUID,
) ([]*membership.Membership, error) {
	if err := orgID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MembershipDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "org_id = ?", orgID.Bytes()).Error; err != nil {
		return nil, err
	}

	members := make([]*membership.Membership, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}

// CountActiveAdmins counts the active admin memberships of an organization.
// The bootstrap repair runs this inside its transaction before promoting.
func (r *GormMembershipRepository) CountActiveAdmins(ctx context.Context, orgID kernel.UUID) (int, error) {
	if err := orgID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&MembershipDTO{}).
		Where("org_id = ? AND role = ? AND status = ?",
			orgID.Bytes(), int(membership.RoleAdmin), int(membership.StatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// Remove deletes a membership record.
func (r *GormMembershipRepository) Remove(ctx context.Context, orgID kernel.UUID, userID kernel.UUID) error {
	if err := errors.Join(orgID.Validate(), userID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&MembershipDTO{}, "org_id = ? AND user_id = ?", orgID.Bytes(), userID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("membership", userID.String())
	}

	return nil
}
