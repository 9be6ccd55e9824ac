// Package order provides the Order aggregate and its status lifecycle for
// the laundry system.
//
// The package includes:
//   - Order: the aggregate root holding customer, service, quantity,
//     expected delivery date and the status lifecycle
//   - Status: the lifecycle enumeration with customer cancellation rules
//
// Key business rules:
//   - Orders must reference an existing catalog service at creation
//   - Quantity must be positive and the expected delivery date set
//   - New orders start in Pending status
//   - Customers may cancel unless the order is Completed or Cancelled
//   - Administrative status updates are unconstrained, isolated behind
//     Order.ForceStatus
package order
