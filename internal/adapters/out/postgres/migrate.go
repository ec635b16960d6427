package postgres

import (
	"bakery/internal/adapters/out/postgres/closingperiodrepo"
	"bakery/internal/adapters/out/postgres/featurerepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the postgres adapters.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&closingperiodrepo.ClosingPeriodDTO{},
		&featurerepo.FeatureDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
