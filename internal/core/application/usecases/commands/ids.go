package commands

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// validateID rejects ids that are not positive.
func validateID[T ~int64](paramName string, id T) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
