// Package taco models a composed customizable item: a size tier reference plus
// protein, sauce, and garnish selections, an optional note, and an overall
// quantity. It also models side items (add-ons, beverages, desserts) and the
// free-accompaniment slots certain add-ons unlock.
//
// The package includes:
//   - ComponentSelection: a catalog reference plus a per-component quantity
//   - Configuration: the composed item, normalized at construction
//   - SideSelection: a side item with optional free-accompaniment slots
//
// Construction normalizes input (zero-quantity entries are dropped, single-or-many
// free-accompaniment shapes are collapsed to one list). Whether a configuration is
// actually orderable against the current catalog is decided by the composition
// validator in the domain services package, not here.
package taco
