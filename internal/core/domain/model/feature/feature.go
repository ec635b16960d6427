package feature

import (
	"errors"
	"strings"

	"bakery/internal/pkg/errs"
)

// ProductOrdering gates the public order form.
const ProductOrdering = "PRODUCT_ORDERING"

var ErrFeatureIsNotConstructed = errors.New("Feature must be created via NewFeature or RestoreFeature")

// Feature is a named toggle persisted by name.
type Feature struct {
	name    string
	enabled bool

	isConstructed bool
}

func NewFeature(name string, enabled bool) (*Feature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Feature{name: name, enabled: enabled, isConstructed: true}, nil
}

// RestoreFeature rebuilds a toggle loaded from storage.
func RestoreFeature(name string, enabled bool) (*Feature, error) {
	return NewFeature(name, enabled)
}

// Copy clones existing so that toggling it leaves the loaded value untouched.
func Copy(existing *Feature) *Feature {
	if existing == nil {
		return nil
	}
	clone := *existing
	return &clone
}

func (f *Feature) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeatureIsNotConstructed
	}
	return nil
}

func (f *Feature) Name() string {
	return f.name
}

func (f *Feature) IsEnabled() bool {
	return f.enabled
}

func (f *Feature) Enable() {
	f.enabled = true
}

func (f *Feature) Disable() {
	f.enabled = false
}
