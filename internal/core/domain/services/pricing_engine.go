package services

import (
	"fmt"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"
)

// PricingEngine reduces a validated configuration and side selections to a total
// price. It is a pure function of its inputs and commutative over selection
// order: any permutation of the same selections yields an identical total.
//
// Pricing rules:
//   - total = tier base price × item quantity
//     - Σ(protein unit price × protein quantity) × item quantity
//     - Σ(side unit price × side quantity) over all side categories
//   - sauces and garnishes are free components of the composed item
//   - free-accompaniment slots contribute zero regardless of the accompaniment's
//     catalog price; this is a deliberate subsidy unlocked by the add-on purchase
//
// Arithmetic stays in integer cents throughout, so intermediate sums are never
// truncated.
type PricingEngine struct{}

// NewPricingEngine creates a pricing engine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// PriceOrder computes the total for one participant's order. cfg may be nil for
// a side-items-only order. The caller is responsible for having validated both
// inputs against the same snapshot.
func (e PricingEngine) PriceOrder(
	cfg *taco.Configuration, sides []taco.SideSelection, snapshot catalog.Snapshot,
) (kernel.Price, error) {
	total := kernel.ZeroPrice()

	if cfg != nil {
		itemPrice, err := e.priceConfiguration(*cfg, snapshot)
		if err != nil {
			return kernel.Price{}, err
		}
		total = total.Add(itemPrice)
	}

	for _, side := range sides {
		item, ok := snapshot.Find(side.Category(), side.ID())
		if !ok {
			return kernel.Price{}, fmt.Errorf("%w: %s %q", ErrUnavailableItem, side.Category(), side.ID())
		}
		total = total.Add(item.Price().MulQuantity(side.Quantity()))
		// Free-accompaniment slots are recorded for fulfillment but never priced.
	}

	return total, nil
}

func (e PricingEngine) priceConfiguration(cfg taco.Configuration, snapshot catalog.Snapshot) (kernel.Price, error) {
	tier, ok := snapshot.Tier(cfg.Size())
	if !ok {
		return kernel.Price{}, fmt.Errorf("%w: size tier %q", ErrUnavailableItem, cfg.Size().String())
	}

	perItem := tier.BasePrice()
	for _, protein := range cfg.Proteins() {
		if catalog.IsSentinel(protein.ID()) {
			continue
		}
		item, found := snapshot.Find(catalog.CategoryProtein, protein.ID())
		if !found {
			return kernel.Price{}, fmt.Errorf("%w: proteins %q", ErrUnavailableItem, protein.ID())
		}
		perItem = perItem.Add(item.Price().MulQuantity(protein.Quantity()))
	}

	return perItem.MulQuantity(cfg.Quantity()), nil
}
