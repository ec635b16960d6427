// Package errs holds the generic error types shared by the domain model and the adapters.
//
// Every type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
// ErrObjectNotFound) with a struct carrying the offending parameter and an optional cause.
// Unwrap returns the sentinel, so callers classify failures with errors.Is and inspect
// details with errors.As.
package errs
