package ports

import (
	"context"

	"tacoshare/internal/core/domain/model/catalog"
)

// CatalogProvider reads the current catalog from the external stock feed.
// Validation fails closed: when the provider errors, the operation that needed
// the snapshot is rejected with a dependency error rather than served from a
// stale view.
type CatalogProvider interface {
	// GetCatalog returns a fresh point-in-time snapshot of items and size tiers.
	GetCatalog(ctx context.Context) (catalog.Snapshot, error)
}
