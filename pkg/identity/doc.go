// Package identity defines the store contract consumed by the endpoint
// layer, together with the built-in principal shapes and reference
// in-memory store implementations.
//
// # Overview
//
// The package provides:
//   - Result, the structured outcome of a store mutation
//   - Store and UserStore, the generic principal store interfaces
//   - Claim, the (type, value) pair attached to principals
//   - built-in User and Role entities
//   - InMemoryUserStore and InMemoryRoleStore for tests and demos
//
// # Basic Usage
//
//	store := identity.NewInMemoryUserStore()
//
//	user := identity.User{UserName: "admin"}
//	res, err := store.Create(ctx, &user)
//	if err != nil {
//		// transport failure
//	}
//	if !res.Succeeded() {
//		// res.Errors holds (code, description) validation failures
//	}
//
// Validation failures travel as Result values; Go errors are reserved for
// transport problems and for ErrNotFound when an id does not resolve.
package identity
