// Package productrepo persists the product catalog with GORM.
package productrepo

import (
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row. Prices are stored in cents.
type ProductDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null;default:''"`
	PriceCents  int64          `gorm:"not null"`
	Allergens   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Status      string         `gorm:"type:varchar(16);not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

const centsExponent = 2

func fromDomain(p *product.Product) ProductDTO {
	allergens := p.Allergens()
	if allergens == nil {
		allergens = make([]string, 0)
	}

	return ProductDTO{
		ID:          int64(p.ID()),
		Name:        p.Name(),
		Description: p.Description(),
		PriceCents:  p.Price().Round(centsExponent).Shift(centsExponent).IntPart(),
		Allergens:   pq.StringArray(allergens),
		Status:      p.Status().String(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		kernel.ProductID(dto.ID),
		dto.Name,
		dto.Description,
		decimal.New(dto.PriceCents, -centsExponent),
		[]string(dto.Allergens),
		product.Status(dto.Status),
	)
}
