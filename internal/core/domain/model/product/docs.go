// Package product contains the catalog aggregate.
//
// A product is created ACTIVE and may be archived; the transition is one-way. Only active
// products may be referenced by new or updated orders.
package product
