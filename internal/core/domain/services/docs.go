// Package services provides domain services for the laundry system.
//
// The package includes:
//   - PasswordVerifier: derivation and verification of salted one-way
//     password verifiers used by the account directory
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root.
package services
