// Package cart implements the cart aggregator: a transient, insertion-ordered
// mapping from catalog item identifiers to desired quantities.
//
// A cart lives only for the duration of a shopping session and is never
// persisted with an identity of its own. At checkout it is priced against the
// catalog to produce the frozen item list of an order; after that the cart
// and the order share nothing.
//
// Key business rules:
//   - Quantities are always positive; the core enforces no upper bound
//   - Pricing resolves every entry against the catalog or fails
//   - Item order in the priced result equals the order items were added in
package cart
