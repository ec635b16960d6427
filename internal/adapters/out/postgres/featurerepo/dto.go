// Package featurerepo persists feature toggles with GORM.
package featurerepo

import (
	"bakery/internal/core/domain/model/feature"
)

// FeatureDTO is keyed by the toggle name.
type FeatureDTO struct {
	Name    string `gorm:"type:varchar(64);primaryKey"`
	Enabled bool   `gorm:"not null"`
}

func (FeatureDTO) TableName() string {
	return "features"
}

func fromDomain(f *feature.Feature) FeatureDTO {
	return FeatureDTO{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
	}
}

func toDomain(dto FeatureDTO) (*feature.Feature, error) {
	return feature.RestoreFeature(dto.Name, dto.Enabled)
}
