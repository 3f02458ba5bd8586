package grouporderrepo

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGroupOrderRepository implements GroupOrderRepository using GORM.
type GormGroupOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGroupOrderRepository creates a new GORM group order repository.
func NewGormGroupOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormGroupOrderRepository {
	return &GormGroupOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new group order to the database.
func (r *GormGroupOrderRepository) Add(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing group order to the database.
func (r *GormGroupOrderRepository) Update(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&GroupOrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":              dto.Name,
		"status":            dto.Status,
		"pending_delivery":  dto.PendingDelivery,
		"snapshot":          dto.Snapshot,
		"external_order_id": dto.ExternalOrderID,
		"transaction_id":    dto.TransactionID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a group order by ID.
func (r *GormGroupOrderRepository) Get(ctx context.Context, id kernel.UUID) (*grouporder.GroupOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GroupOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("group order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Lock persists the Open to Locked transition with a conditional update on the
// stored status. When a concurrent lock already won, zero rows match and the
// caller gets a Conflict error.
func (r *GormGroupOrderRepository) Lock(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&GroupOrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(grouporder.Open)).
		Updates(map[string]any{
			"status":           dto.Status,
			"pending_delivery": dto.PendingDelivery,
			"snapshot":         dto.Snapshot,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("group order", "is already locked")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetPendingDelivery retrieves all locked group orders still awaiting gateway
// confirmation.
func (r *GormGroupOrderRepository) GetPendingDelivery(ctx context.Context) ([]*grouporder.GroupOrder, error) {
	var dtos []GroupOrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND pending_delivery", int(grouporder.Locked)).Error
	if err != nil {
		return nil, err
	}

	groupOrders := make([]*grouporder.GroupOrder, 0, len(dtos))
	for _, dto := range dtos {
		groupOrder, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		groupOrders = append(groupOrders, groupOrder)
	}

	return groupOrders, nil
}
