package catalog

import (
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"
)

// Category identifies which section of the catalog an item belongs to.
type Category string

// Catalog categories, matching the sections of the external stock feed.
const (
	CategoryProtein   Category = "proteins"
	CategorySauce     Category = "sauces"
	CategoryGarnish   Category = "garnishes"
	CategoryAddon     Category = "addons"
	CategoryBeverage  Category = "beverages"
	CategoryDessert   Category = "desserts"
)

// SideCategories lists the categories a side item may belong to,
// independent of any size tier.
func SideCategories() []Category {
	return []Category{CategoryAddon, CategoryBeverage, CategoryDessert}
}

// Sentinel identifiers. A "no protein" or "no sauce" selection satisfies the
// minimum-selection rule without referencing a stocked component, so both are
// exempt from availability checks.
const (
	NoProtein = "no_protein"
	NoSauce   = "no_sauce"
)

// IsSentinel reports whether id is one of the explicit "none" selections.
func IsSentinel(id string) bool {
	return id == NoProtein || id == NoSauce
}

// Item is one sellable component in the catalog: an immutable snapshot entry
// carrying identifier, display name, unit price and availability.
type Item struct {
	id      string
	name    string
	price   kernel.Price
	inStock bool
}

// NewItem creates a catalog item. The identifier must be non-empty.
func NewItem(id, name string, price kernel.Price, inStock bool) (Item, error) {
	if id == "" {
		return Item{}, errs.NewValueIsRequiredError("item id")
	}
	return Item{id: id, name: name, price: price, inStock: inStock}, nil
}

// ID returns the item identifier.
func (i Item) ID() string {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() kernel.Price {
	return i.price
}

// InStock reports whether the item is currently available.
func (i Item) InStock() bool {
	return i.inStock
}
