package taco

import (
	"tacoshare/internal/pkg/errs"
)

// ErrSelectionIDIsRequired is returned when a component selection has no identifier.
var ErrSelectionIDIsRequired = errs.NewValueIsRequiredError("selection id")

// ComponentSelection references one catalog component together with a quantity.
// Only protein selections meaningfully exceed quantity 1; sauce and garnish
// selections are sets and always carry quantity 1.
type ComponentSelection struct {
	id       string
	quantity int
}

// NewComponentSelection creates a selection with an explicit quantity.
// A non-positive quantity is invalid here; zero-quantity entries are dropped
// earlier, during configuration normalization.
func NewComponentSelection(id string, quantity int) (ComponentSelection, error) {
	if id == "" {
		return ComponentSelection{}, ErrSelectionIDIsRequired
	}
	if quantity < 1 {
		return ComponentSelection{}, errs.NewValueIsOutOfRangeError("selection quantity", quantity, 1, maxSelectionQuantity)
	}
	return ComponentSelection{id: id, quantity: quantity}, nil
}

// maxSelectionQuantity bounds a single component line. The real ceiling is the
// tier's protein cap, enforced by the composition validator.
const maxSelectionQuantity = 5

// ID returns the referenced catalog identifier.
func (s ComponentSelection) ID() string {
	return s.id
}

// Quantity returns the selected quantity (always ≥ 1).
func (s ComponentSelection) Quantity() int {
	return s.quantity
}

// normalizeSelections drops zero-quantity entries, defaults missing quantities
// to 1, and validates the rest. Order is preserved.
func normalizeSelections(raw []ComponentSelectionInput) ([]ComponentSelection, error) {
	selections := make([]ComponentSelection, 0, len(raw))
	for _, in := range raw {
		quantity := in.Quantity
		if quantity == 0 {
			if in.QuantitySet {
				continue // explicit zero means "remove"
			}
			quantity = 1
		}
		selection, err := NewComponentSelection(in.ID, quantity)
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}
	return selections, nil
}

// ComponentSelectionInput is the boundary shape for a selection before
// normalization: the quantity may be absent (defaults to 1) or explicitly zero
// (the entry is removed, not stored).
type ComponentSelectionInput struct {
	ID          string
	Quantity    int
	QuantitySet bool
}
