// Package kernel provides the shared domain primitives of the store.
//
// The package includes:
//   - UUID: a value object for entity identifiers (products, orders)
//
// Primitives here are immutable and safe for concurrent use; every domain
// package may depend on kernel, but kernel depends on no domain package.
package kernel
