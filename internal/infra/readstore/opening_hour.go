package readstore

import (
	"context"

	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/usecase/queries"
)

type OpeningHourReadQueries interface {
	ListOpeningHours(ctx context.Context, db sqlc.DBTX) ([]sqlc.OpeningHours, error)
}

type OpeningHourReadStore struct {
	queries OpeningHourReadQueries
	db      sqlc.DBTX
}

func NewOpeningHourReadStore(queries OpeningHourReadQueries, db sqlc.DBTX) *OpeningHourReadStore {
	return &OpeningHourReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OpeningHourReadStore) List(ctx context.Context) ([]*queries.OpeningHourView, error) {
	rows, err := r.queries.ListOpeningHours(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list opening hours", err)
	}

	views := make([]*queries.OpeningHourView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.OpeningHourView{
			ID:         row.ID,
			PharmacyID: row.PharmacyID,
			Day:        pharmacy.Day(row.DayOfWeek),
			Open:       converter.ClockTimeFromPgtime(row.OpenTime),
			Close:      converter.ClockTimeFromPgtime(row.CloseTime),
		})
	}
	return views, nil
}
