// Package services provides the stateless domain services of the ordering core:
// the composition validator and the pricing engine. Both are pure decision
// functions over a catalog snapshot, with no side effects, used by the
// group-order command handlers before any state is persisted.
//
// The package includes:
//   - CompositionValidator: checks a proposed item configuration and side
//     selections against size-derived limits and catalog availability
//   - PricingEngine: reduces a validated configuration and side selections to a
//     deterministic, permutation-invariant total price
package services
