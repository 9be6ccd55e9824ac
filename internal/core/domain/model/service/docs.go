// Package service provides the Service aggregate for the laundry catalog.
//
// A Service prices a laundry offering for one material type. The
// (name, materialType) pair is unique across the catalog, and a service
// referenced by existing orders cannot be mutated or deleted — that rule is
// enforced transactionally by the catalog use cases.
package service
