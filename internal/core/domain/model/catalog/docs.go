// Package catalog models the sellable components exposed by the external catalog
// provider: proteins, sauces, garnishes, add-ons, beverages, desserts, and the
// size tiers that constrain taco composition.
//
// The package includes:
//   - Item: one sellable component with price and availability
//   - Size / SizeTier: the closed set of taco size classes and their composition limits
//   - Snapshot: an immutable per-read view of the whole catalog with lookup helpers
//
// A Snapshot is advisory: the engine re-reads the catalog at validation time and
// never caches it beyond a single operation.
package catalog
