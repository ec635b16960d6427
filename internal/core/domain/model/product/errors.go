package product

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProduct classifies every rejected product.
	ErrInvalidProduct = errors.New("invalid product")

	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// InvalidProductError names the rule a product broke.
type InvalidProductError struct {
	Message string
}

func newInvalidProductError(format string, args ...any) *InvalidProductError {
	return &InvalidProductError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidProductError) Error() string {
	return e.Message
}

func (e *InvalidProductError) Unwrap() error {
	return ErrInvalidProduct
}
