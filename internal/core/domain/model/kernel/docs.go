// Package kernel provides core domain primitives shared across the laundry
// domain model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and
//     comparison capabilities
//
// These primitives are immutable and thread-safe, and enforce validation
// rules so domain objects built on them are always in a valid state.
package kernel
