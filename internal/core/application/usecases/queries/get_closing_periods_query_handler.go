package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetClosingPeriodsQueryHandler struct {
	db *gorm.DB
}

func NewGetClosingPeriodsQueryHandler(db *gorm.DB) GetClosingPeriodsQueryHandler {
	return GetClosingPeriodsQueryHandler{db: db}
}

// Handle returns the closing periods sorted by start date.
func (h GetClosingPeriodsQueryHandler) Handle(
	ctx context.Context,
	query GetClosingPeriodsQuery,
) ([]GetClosingPeriodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	periods := make([]GetClosingPeriodsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			start_date,
			end_date
		FROM closing_periods
		ORDER BY start_date, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var startDate, endDate time.Time

		if err = rows.Scan(&id, &startDate, &endDate); err != nil {
			return nil, err
		}

		periods = append(periods, GetClosingPeriodsQueryResponse{
			ID:        kernel.ClosingPeriodID(id),
			StartDate: kernel.AtNoonUTC(startDate),
			EndDate:   kernel.AtNoonUTC(endDate),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}
