package product

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status is the lifecycle state of a product. The only transition is Active -> Archived.
type Status string

const (
	Active   Status = "ACTIVE"
	Archived Status = "ARCHIVED"
)

// Validate rejects any value other than Active or Archived. Statuses read from the
// database or from a query string go through it before use.
func (s Status) Validate() error {
	switch s {
	case Active, Archived:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid product status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
