package ports

import (
	"context"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
)

// GroupOrderRepository defines the persistence contract for group order
// aggregates.
type GroupOrderRepository interface {
	// Add persists a new group order aggregate to storage.
	Add(ctx context.Context, aggregate *grouporder.GroupOrder) error

	// Update persists changes to an existing group order aggregate.
	Update(ctx context.Context, aggregate *grouporder.GroupOrder) error

	// Get retrieves a group order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*grouporder.GroupOrder, error)

	// Lock persists the aggregate's transition to Locked conditionally: the
	// row is updated only while its stored status is still Open. When another
	// writer locked first, a Conflict error is returned and the aggregate's
	// state in storage is untouched.
	Lock(ctx context.Context, aggregate *grouporder.GroupOrder) error

	// GetPendingDelivery retrieves all locked group orders still awaiting
	// gateway confirmation. Used by the delivery retry job.
	GetPendingDelivery(ctx context.Context) ([]*grouporder.GroupOrder, error)
}
