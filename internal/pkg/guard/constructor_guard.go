// Package guard lets value types detect whether they were built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in command and query values. Its zero value is "not constructed",
// so a struct literal that skipped the constructor fails Validate.
//
//	type ArchiveProductCommand struct {
//	    productID kernel.ProductID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c ArchiveProductCommand) Validate() error {
//	    return c.guard.Validate(ErrArchiveProductCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) for a zero guard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
