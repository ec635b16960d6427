package product

import (
	"errors"
	"slices"
	"strings"

	"bakery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Product is an item of the bakery catalog. New products start Active; archived products
// stay in storage so that past orders keep their references, but they can no longer be
// ordered or edited.
//
// Products are never mutated in place by use cases: a persisted product is loaded, cloned
// with Copy, transitioned, then saved whole.
type Product struct {
	id          kernel.ProductID
	name        string
	description string
	price       decimal.Decimal
	allergens   []string
	status      Status

	isConstructed bool
}

// NewProduct validates the details of a new catalog item and returns it Active.
// The id stays zero until the repository assigns one.
func NewProduct(name, description string, price decimal.Decimal, allergens []string) (*Product, error) {
	p := &Product{
		status:        Active,
		isConstructed: true,
	}

	if err := p.setDetails(name, description, price, allergens); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id kernel.ProductID,
	name string,
	description string,
	price decimal.Decimal,
	allergens []string,
	status Status,
) (*Product, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		id:            id,
		status:        status,
		isConstructed: true,
	}
	if err := p.setDetails(name, description, price, allergens); err != nil {
		return nil, err
	}

	return p, nil
}

// Copy clones existing, keeping its id. The clone shares no slice with the original.
func Copy(existing *Product) *Product {
	if existing == nil {
		return nil
	}

	clone := *existing
	clone.allergens = slices.Clone(existing.allergens)
	return &clone
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ProductID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Allergens returns a copy of the allergen list.
func (p *Product) Allergens() []string {
	return slices.Clone(p.allergens)
}

func (p *Product) Status() Status {
	return p.status
}

func (p *Product) IsActive() bool {
	return p.status == Active
}

// Archive moves the product out of the orderable catalog. Archiving an archived product
// is a no-op.
func (p *Product) Archive() {
	p.status = Archived
}

// UpdateWith replaces the editable details of an active product. Nothing changes when
// validation fails.
func (p *Product) UpdateWith(name, description string, price decimal.Decimal, allergens []string) error {
	if p.status == Archived {
		return newInvalidProductError("archived product %d cannot be updated", p.id)
	}

	staged := Copy(p)
	if err := staged.setDetails(name, description, price, allergens); err != nil {
		return err
	}

	*p = *staged
	return nil
}

func (p *Product) setDetails(name, description string, price decimal.Decimal, allergens []string) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return err
	}

	p.description = strings.TrimSpace(description)
	p.allergens = normalizeAllergens(allergens)
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newInvalidProductError("product name has to be defined")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return newInvalidProductError("product price %s has to be positive or zero", price.String())
	}
	p.price = price
	return nil
}

// normalizeAllergens trims entries and drops blanks and duplicates, keeping the first
// occurrence order.
func normalizeAllergens(allergens []string) []string {
	result := make([]string, 0, len(allergens))
	for _, a := range allergens {
		a = strings.TrimSpace(a)
		if a == "" || slices.Contains(result, a) {
			continue
		}
		result = append(result, a)
	}
	return result
}
