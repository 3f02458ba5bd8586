// Package kernel provides core domain primitives shared across the group-ordering
// domain model. It implements fundamental building blocks following Domain-Driven
// Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Price: An immutable fixed-point money value (two decimal places, stored in cents)
//   - TimeWindow: The open interval of a group-ordering session
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe.
package kernel
