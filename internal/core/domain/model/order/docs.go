// Package order provides the Order aggregate and the validation engine that decides
// whether a proposed order is legal.
//
// The package includes:
//   - Order: the aggregate root holding client contact, product lines and scheduling
//   - Type: PICKUP, DELIVERY or RESERVATION, which selects the mandatory scheduling date
//   - Details and Snapshot: the user-supplied fields and the catalog/calendar state they
//     are checked against
//
// Key business rules:
//   - only the scheduling fields of the declared type may be populated
//   - every line references an active product and orders a positive quantity
//   - the scheduling date is today or later and outside every closing period
//   - a delivery needs an address
//
// Creation and update run the same rules. An update is checked against the catalog and
// closing periods at the time of the update, never against those used at creation.
package order
