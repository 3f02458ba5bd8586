package services

import (
	"errors"
	"fmt"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/taco"
	"tacoshare/internal/pkg/errs"
)

// Validation error kinds. Each wraps the matching errs sentinel so transport
// layers can map them, while callers needing the precise reason match these.
var (
	// ErrMissingRequiredSelection is returned when a composed item lacks a protein
	// or sauce selection that its size tier requires.
	ErrMissingRequiredSelection = errors.New("missing required selection")
	// ErrQuantityExceedsLimit is returned when the protein-portion sum or sauce
	// count exceeds the tier cap.
	ErrQuantityExceedsLimit = errors.New("quantity exceeds limit")
	// ErrUnavailableItem is returned when a referenced identifier is unknown to
	// the catalog or out of stock. The whole configuration is invalidated; nothing
	// is silently dropped.
	ErrUnavailableItem = errors.New("unavailable item")
	// ErrGarnishNotAllowed is returned when garnish selections are present but the
	// tier disallows them. Garnish is otherwise always optional.
	ErrGarnishNotAllowed = errors.New("garnish not allowed")
)

// CompositionValidator checks proposed item configurations against size-derived
// limits and catalog availability. It is a pure decision function: no side
// effects, no retained state. The snapshot must be freshly read by the caller;
// availability is advisory and re-checked on every validation.
type CompositionValidator struct{}

// NewCompositionValidator creates a validator.
func NewCompositionValidator() CompositionValidator {
	return CompositionValidator{}
}

// ValidateConfiguration checks a composed item against the snapshot.
//
// Checks run in order and short-circuit on the first failure:
//  1. the size tier is recognized and present in the snapshot
//  2. every referenced protein/sauce/garnish id exists and is available
//  3. 1 ≤ summed protein quantity ≤ tier cap (the "no protein" sentinel
//     satisfies the minimum)
//  4. 1 ≤ sauce count ≤ tier cap (the "no sauce" sentinel satisfies the minimum)
//  5. garnish selections are empty when the tier disallows them; they are never
//     required
//  6. overall item quantity ≥ 1 (guaranteed by construction, re-checked here)
func (v CompositionValidator) ValidateConfiguration(cfg taco.Configuration, snapshot catalog.Snapshot) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Size().Validate(); err != nil {
		return err
	}
	tier, ok := snapshot.Tier(cfg.Size())
	if !ok {
		return fmt.Errorf("%w: size tier %q", ErrUnavailableItem, cfg.Size().String())
	}

	if err := v.checkAvailability(catalog.CategoryProtein, selectionIDs(cfg.Proteins()), snapshot); err != nil {
		return err
	}
	if err := v.checkAvailability(catalog.CategorySauce, cfg.Sauces(), snapshot); err != nil {
		return err
	}
	if err := v.checkAvailability(catalog.CategoryGarnish, cfg.Garnishes(), snapshot); err != nil {
		return err
	}

	if !cfg.HasProteinSelection() {
		return fmt.Errorf("%w: protein", ErrMissingRequiredSelection)
	}
	if sum := cfg.ProteinQuantitySum(); sum > tier.MaxProteins() {
		return fmt.Errorf("%w: %d protein portions, tier %s allows %d",
			ErrQuantityExceedsLimit, sum, tier.Size(), tier.MaxProteins())
	}

	sauces := cfg.Sauces()
	if len(sauces) == 0 {
		return fmt.Errorf("%w: sauce", ErrMissingRequiredSelection)
	}
	if len(sauces) > tier.MaxSauces() {
		return fmt.Errorf("%w: %d sauces, tier %s allows %d",
			ErrQuantityExceedsLimit, len(sauces), tier.Size(), tier.MaxSauces())
	}

	if len(cfg.Garnishes()) > 0 && !tier.AllowGarnish() {
		return fmt.Errorf("%w: tier %s", ErrGarnishNotAllowed, tier.Size())
	}

	if cfg.Quantity() < 1 {
		return errs.NewValueIsOutOfRangeError("item quantity", cfg.Quantity(), 1, 50)
	}

	return nil
}

// ValidateSides checks side selections against the snapshot: every id must be
// known and available in its category, and resolved free-accompaniment slots
// must reference available sauces.
func (v CompositionValidator) ValidateSides(sides []taco.SideSelection, snapshot catalog.Snapshot) error {
	for _, side := range sides {
		if !snapshot.IsAvailable(side.Category(), side.ID()) {
			return fmt.Errorf("%w: %s %q", ErrUnavailableItem, side.Category(), side.ID())
		}
		for _, slot := range side.FreeAccompaniments() {
			if slot == "" {
				continue // unresolved slot, legal until fulfillment
			}
			if !snapshot.IsAvailable(catalog.CategorySauce, slot) {
				return fmt.Errorf("%w: free accompaniment %q", ErrUnavailableItem, slot)
			}
		}
	}
	return nil
}

func (v CompositionValidator) checkAvailability(category catalog.Category, ids []string, snapshot catalog.Snapshot) error {
	for _, id := range ids {
		if !snapshot.IsAvailable(category, id) {
			return fmt.Errorf("%w: %s %q", ErrUnavailableItem, category, id)
		}
	}
	return nil
}

func selectionIDs(selections []taco.ComponentSelection) []string {
	ids := make([]string, 0, len(selections))
	for _, s := range selections {
		ids = append(ids, s.ID())
	}
	return ids
}
