package catalog

// Snapshot is a point-in-time view of the full catalog, read from the external
// provider at the start of an operation. It is never mutated after construction
// and never cached across operations.
type Snapshot struct {
	items map[Category]map[string]Item
	tiers map[Size]SizeTier
}

// NewSnapshot builds a snapshot from per-category items and size tiers.
// Later duplicates of an item id within a category win, matching feed order.
func NewSnapshot(items map[Category][]Item, tiers []SizeTier) Snapshot {
	indexed := make(map[Category]map[string]Item, len(items))
	for category, list := range items {
		byID := make(map[string]Item, len(list))
		for _, item := range list {
			byID[item.ID()] = item
		}
		indexed[category] = byID
	}

	tierIndex := make(map[Size]SizeTier, len(tiers))
	for _, tier := range tiers {
		tierIndex[tier.Size()] = tier
	}

	return Snapshot{items: indexed, tiers: tierIndex}
}

// Find returns the item with the given id in a category.
func (s Snapshot) Find(category Category, id string) (Item, bool) {
	item, ok := s.items[category][id]
	return item, ok
}

// Tier returns the size tier for a size code.
func (s Snapshot) Tier(size Size) (SizeTier, bool) {
	tier, ok := s.tiers[size]
	return tier, ok
}

// Items returns the items of one category. The returned slice is a copy.
func (s Snapshot) Items(category Category) []Item {
	list := make([]Item, 0, len(s.items[category]))
	for _, item := range s.items[category] {
		list = append(list, item)
	}
	return list
}

// IsAvailable reports whether the id exists in the category and is in stock.
// Sentinel selections ("no protein", "no sauce") are always available.
func (s Snapshot) IsAvailable(category Category, id string) bool {
	if IsSentinel(id) {
		return true
	}
	item, ok := s.Find(category, id)
	return ok && item.InStock()
}
