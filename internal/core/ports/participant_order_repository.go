package ports

import (
	"context"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
)

// ParticipantOrderRepository defines the persistence contract for participant
// order aggregates.
type ParticipantOrderRepository interface {
	// Add persists a new participant order.
	Add(ctx context.Context, aggregate *grouporder.ParticipantOrder) error

	// Update persists changes to an existing participant order.
	Update(ctx context.Context, aggregate *grouporder.ParticipantOrder) error

	// Get retrieves a participant order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*grouporder.ParticipantOrder, error)

	// GetByOwner retrieves the owner's participant order within a group order,
	// if any. Returns an ObjectNotFound error when the owner has none.
	GetByOwner(ctx context.Context, groupOrderID kernel.UUID, ownerID kernel.UUID) (*grouporder.ParticipantOrder, error)

	// GetAllForGroupOrder retrieves every participant order of a group order.
	GetAllForGroupOrder(ctx context.Context, groupOrderID kernel.UUID) ([]*grouporder.ParticipantOrder, error)

	// Delete removes a participant order.
	Delete(ctx context.Context, id kernel.UUID) error
}
