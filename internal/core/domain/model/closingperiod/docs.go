// Package closingperiod models the date ranges during which the bakery is closed.
//
// Key business rules:
//   - both dates are required and neither may fall on a day before today (business time zone)
//   - the end date may not precede the start date
//   - a closing period blocks every order scheduled on any day of its range, bounds included
//
// Closing periods are created by staff, never modified, and deleted either by staff or by
// the nightly purge once they have ended.
package closingperiod
