package taco

import (
	"errors"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/pkg/errs"
	"tacoshare/internal/pkg/guard"
)

// ErrConfigurationIsNotConstructed is returned when a Configuration was not
// created through NewConfiguration.
var ErrConfigurationIsNotConstructed = errors.New("Configuration must be created via NewConfiguration constructor")

// maxItemQuantity caps how many identical configured items one line may hold.
const maxItemQuantity = 50

// Configuration is a composed customizable item: one size tier reference, the
// protein selections (ordered, quantities summed against the tier cap), a sauce
// selection set, an optional garnish selection set, a free-text note, and an
// overall quantity of identical items.
//
// A Configuration is normalized at construction: zero-quantity component entries
// are removed, missing quantities default to 1, and repeated sauce or garnish
// ids collapse to one entry so duplicates never count against a tier cap. It
// carries no catalog knowledge; the composition validator decides whether it is
// orderable.
type Configuration struct {
	size      catalog.Size
	proteins  []ComponentSelection
	sauces    []string
	garnishes []string
	note      string
	quantity  int

	guard guard.ConstructorGuard
}

// NewConfiguration creates a normalized configuration.
//
// The size is kept as given (its existence in the catalog is validated later);
// proteins are normalized per ComponentSelectionInput semantics; sauces and
// garnishes are identifier sets, deduplicated preserving first occurrence;
// quantity is the count of identical items and must be at least 1.
func NewConfiguration(
	size catalog.Size,
	proteins []ComponentSelectionInput,
	sauces []string,
	garnishes []string,
	note string,
	quantity int,
) (Configuration, error) {
	if quantity < 1 {
		return Configuration{}, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, maxItemQuantity)
	}

	normalized, err := normalizeSelections(proteins)
	if err != nil {
		return Configuration{}, err
	}

	return Configuration{
		size:      size,
		proteins:  normalized,
		sauces:    dedupeIDs(sauces),
		garnishes: dedupeIDs(garnishes),
		note:      note,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// dedupeIDs keeps the first occurrence of each identifier so a repeated sauce
// or garnish never counts against a tier cap twice.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Validate ensures the configuration was created through NewConfiguration.
func (c Configuration) Validate() error {
	return c.guard.Validate(ErrConfigurationIsNotConstructed)
}

// Size returns the referenced size tier code.
func (c Configuration) Size() catalog.Size {
	return c.size
}

// Proteins returns the protein selections in submission order.
func (c Configuration) Proteins() []ComponentSelection {
	return append([]ComponentSelection(nil), c.proteins...)
}

// ProteinQuantitySum returns the summed quantity across protein selections.
// Sentinel "no protein" selections count toward the minimum but not the cap.
func (c Configuration) ProteinQuantitySum() int {
	sum := 0
	for _, p := range c.proteins {
		if catalog.IsSentinel(p.ID()) {
			continue
		}
		sum += p.Quantity()
	}
	return sum
}

// HasProteinSelection reports whether any protein selection exists, including
// the explicit "no protein" sentinel.
func (c Configuration) HasProteinSelection() bool {
	return len(c.proteins) > 0
}

// Sauces returns the sauce identifier set.
func (c Configuration) Sauces() []string {
	return append([]string(nil), c.sauces...)
}

// Garnishes returns the garnish identifier set.
func (c Configuration) Garnishes() []string {
	return append([]string(nil), c.garnishes...)
}

// Note returns the free-text note.
func (c Configuration) Note() string {
	return c.note
}

// Quantity returns how many identical configured items this line holds.
func (c Configuration) Quantity() int {
	return c.quantity
}
