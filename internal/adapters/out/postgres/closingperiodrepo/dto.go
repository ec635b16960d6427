// Package closingperiodrepo persists closing periods with GORM.
package closingperiodrepo

import (
	"time"

	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/kernel"
)

// ClosingPeriodDTO stores both bounds as SQL dates.
type ClosingPeriodDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"type:date;not null;index"`
	EndDate   time.Time `gorm:"type:date;not null"`
}

func (ClosingPeriodDTO) TableName() string {
	return "closing_periods"
}

func fromDomain(cp *closingperiod.ClosingPeriod) ClosingPeriodDTO {
	return ClosingPeriodDTO{
		ID:        int64(cp.ID()),
		StartDate: kernel.AtNoonUTC(cp.StartDate()),
		EndDate:   kernel.AtNoonUTC(cp.EndDate()),
	}
}

// toDomain anchors the dates read back at noon UTC, the way they entered the domain.
func toDomain(dto ClosingPeriodDTO) (*closingperiod.ClosingPeriod, error) {
	return closingperiod.RestoreClosingPeriod(
		kernel.ClosingPeriodID(dto.ID),
		kernel.AtNoonUTC(dto.StartDate),
		kernel.AtNoonUTC(dto.EndDate),
	)
}
