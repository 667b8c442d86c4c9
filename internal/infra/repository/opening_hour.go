package repository

import (
	"context"

	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
)

type OpeningHourWriteQueries interface {
	CreateOpeningHour(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOpeningHourParams) (sqlc.OpeningHours, error)
}

type OpeningHourRepository struct {
	queries OpeningHourWriteQueries
}

func NewOpeningHourRepository(queries OpeningHourWriteQueries) *OpeningHourRepository {
	return &OpeningHourRepository{queries: queries}
}

func (r *OpeningHourRepository) Create(ctx context.Context, tx sqlc.DBTX, pharmacyID int64, hour pharmacy.OpeningHour) error {
	_, err := r.queries.CreateOpeningHour(ctx, tx, sqlc.CreateOpeningHourParams{
		PharmacyID: pharmacyID,
		DayOfWeek:  string(hour.Day),
		OpenTime:   converter.ClockTimeToPgtime(hour.Open),
		CloseTime:  converter.ClockTimeToPgtime(hour.Close),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create opening hour", err)
	}
	return nil
}
