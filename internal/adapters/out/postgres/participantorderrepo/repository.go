package participantorderrepo

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParticipantOrderRepository implements ParticipantOrderRepository using GORM.
type GormParticipantOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParticipantOrderRepository creates a new GORM participant order repository.
func NewGormParticipantOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormParticipantOrderRepository {
	return &GormParticipantOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new participant order to the database.
func (r *GormParticipantOrderRepository) Add(ctx context.Context, aggregate *grouporder.ParticipantOrder) error {
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

// Update saves an existing participant order to the database. All content
// columns are written so a wholesale replace clears dropped fields.
func (r *GormParticipantOrderRepository) Update(ctx context.Context, aggregate *grouporder.ParticipantOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ParticipantOrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"size":        dto.Size,
		"proteins":    dto.Proteins,
		"sauces":      dto.Sauces,
		"garnishes":   dto.Garnishes,
		"note":        dto.Note,
		"quantity":    dto.Quantity,
		"sides":       dto.Sides,
		"total_cents": dto.TotalCents,
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

// Get retrieves a participant order by ID.
func (r *GormParticipantOrderRepository) Get(ctx context.Context, id kernel.UUID) (*grouporder.ParticipantOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParticipantOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("participant order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves the owner's participant order within a group order.
// Each owner holds at most one order per cart.
func (r *GormParticipantOrderRepository) GetByOwner(
	ctx context.Context, groupOrderID kernel.UUID, ownerID kernel.UUID,
) (*grouporder.ParticipantOrder, error) {
	if err := errors.Join(groupOrderID.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	var dto ParticipantOrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "group_order_id = ? AND owner_id = ?", groupOrderID.Bytes(), ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("participant order", ownerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForGroupOrder retrieves every participant order of a group order.
func (r *GormParticipantOrderRepository) GetAllForGroupOrder(
	ctx context.Context, groupOrderID kernel.UUID,
) ([]*grouporder.ParticipantOrder, error) {
	if err := groupOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParticipantOrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "group_order_id = ?", groupOrderID.Bytes()).Error; err != nil {
		return nil, err
	}

	participantOrders := make([]*grouporder.ParticipantOrder, 0, len(dtos))
	for _, dto := range dtos {
		participantOrder, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		participantOrders = append(participantOrders, participantOrder)
	}

	return participantOrders, nil
}

// Delete removes a participant order.
func (r *GormParticipantOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParticipantOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("participant order", id.String())
	}

	return nil
}
