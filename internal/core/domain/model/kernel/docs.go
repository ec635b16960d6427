// Package kernel provides the primitives shared by every aggregate of the bakery domain.
//
// The package includes:
//   - identifier types (ProductID, OrderID, ClosingPeriodID) assigned by persistence
//   - calendar helpers that compare dates by day, ignoring the time of day
//   - Clock, with BusinessClock anchored at the shop's time zone and FixedClock for tests
//
// Every date predicate takes "now" as an argument instead of reading the clock itself,
// so domain rules stay deterministic for a given Clock.
package kernel
