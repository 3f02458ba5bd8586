package taco

import (
	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/pkg/errs"
)

// Domain errors for side selections.
var (
	// ErrSideCategoryIsInvalid is returned when a side references a non-side category.
	ErrSideCategoryIsInvalid = errs.NewValueIsInvalidError("side category")
	// ErrTooManyFreeAccompaniments is returned when more free-accompaniment slots
	// are claimed than the purchased add-on quantity unlocks.
	ErrTooManyFreeAccompaniments = errs.NewValueIsInvalidError(
		"free accompaniment slots exceed the purchased add-on quantity")
	// ErrFreeAccompanimentNotEntitled is returned when free-accompaniment slots are
	// attached to a side that is not an entitled add-on.
	ErrFreeAccompanimentNotEntitled = errs.NewValueIsInvalidError(
		"free accompaniments are only granted by entitled add-ons")
)

// entitledAddons is the set of add-on identifiers whose purchase unlocks free
// accompaniment slots, one slot per unit purchased. Unlike item availability
// and prices, which flow through the catalog snapshot, this entitlement set is
// fixed by the menu contract and is not published on the stock feed.
var entitledAddons = map[string]bool{
	"fries":       true,
	"fries_large": true,
	"tenders_box": true,
}

// AddonGrantsFreeAccompaniment reports whether purchasing the add-on id unlocks
// free accompaniment slots.
func AddonGrantsFreeAccompaniment(id string) bool {
	return entitledAddons[id]
}

// FreeAccompanimentInput is the raw, boundary shape of a free-accompaniment
// choice: legacy clients send a single id, newer clients a list. Exactly one of
// the two fields is set; NormalizeFreeAccompaniments collapses both to one list.
type FreeAccompanimentInput struct {
	Single string
	Many   []string
}

// NormalizeFreeAccompaniments collapses the single-or-many input shape into a
// normalized slot list. Empty strings mark unresolved slots and are preserved.
func NormalizeFreeAccompaniments(in FreeAccompanimentInput) []string {
	if len(in.Many) > 0 {
		return append([]string(nil), in.Many...)
	}
	if in.Single != "" {
		return []string{in.Single}
	}
	return nil
}

// SideSelection is one side item line: an add-on, beverage, or dessert with a
// quantity, independent of any size tier. Entitled add-ons additionally carry
// free-accompaniment slots: up to quantity identifiers, each resolved to a
// caller-chosen accompaniment or left empty until resolved. Resolved slots are
// recorded for fulfillment but never priced.
type SideSelection struct {
	id                 string
	category           catalog.Category
	quantity           int
	freeAccompaniments []string
}

// NewSideSelection creates a side line. The quantity defaults to 1 when zero is
// given with no explicit intent; callers removing a line simply omit it.
func NewSideSelection(
	id string, category catalog.Category, quantity int, freeAccompaniments []string,
) (SideSelection, error) {
	if id == "" {
		return SideSelection{}, ErrSelectionIDIsRequired
	}
	if !isSideCategory(category) {
		return SideSelection{}, ErrSideCategoryIsInvalid
	}
	if quantity < 1 {
		return SideSelection{}, errs.NewValueIsOutOfRangeError("side quantity", quantity, 1, maxItemQuantity)
	}
	if len(freeAccompaniments) > 0 {
		if !AddonGrantsFreeAccompaniment(id) || category != catalog.CategoryAddon {
			return SideSelection{}, ErrFreeAccompanimentNotEntitled
		}
		if len(freeAccompaniments) > quantity {
			return SideSelection{}, ErrTooManyFreeAccompaniments
		}
	}

	return SideSelection{
		id:                 id,
		category:           category,
		quantity:           quantity,
		freeAccompaniments: append([]string(nil), freeAccompaniments...),
	}, nil
}

func isSideCategory(category catalog.Category) bool {
	for _, c := range catalog.SideCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// ID returns the referenced catalog identifier.
func (s SideSelection) ID() string {
	return s.id
}

// Category returns the side's catalog category.
func (s SideSelection) Category() catalog.Category {
	return s.category
}

// Quantity returns the purchased quantity (always ≥ 1).
func (s SideSelection) Quantity() int {
	return s.quantity
}

// FreeAccompaniments returns the normalized slot list. Empty strings are
// unresolved slots.
func (s SideSelection) FreeAccompaniments() []string {
	return append([]string(nil), s.freeAccompaniments...)
}
