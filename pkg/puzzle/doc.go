// Package puzzle defines the domain model shared by every other package in
// this module: the closed track/mod/direction/cart-type enumerations, the
// Board grid, the Cart record, the mutable search State, and the Puzzle
// input record with its construction-time validation.
//
// Nothing in this package performs a tick, branches a search, or prunes a
// state — that belongs to pkg/sim, pkg/gen, and pkg/search respectively,
// all of which depend on puzzle but never the reverse.
package puzzle
