package readstore

import (
	"context"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/pkg/pgconv"
	"mask-ledger/internal/usecase/queries"
)

type PharmacyReadQueries interface {
	ListPharmacies(ctx context.Context, db sqlc.DBTX) ([]sqlc.Pharmacies, error)
	GetPharmacyByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Pharmacies, error)
	ListPharmaciesOpenAt(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPharmaciesOpenAtParams) ([]sqlc.Pharmacies, error)
	CountPharmacyMasksInPriceRange(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPharmacyMasksInPriceRangeParams) ([]sqlc.CountPharmacyMasksInPriceRangeRow, error)
	SearchPharmaciesByName(ctx context.Context, db sqlc.DBTX, pattern string) ([]sqlc.Pharmacies, error)
}

type PharmacyReadStore struct {
	queries PharmacyReadQueries
	db      sqlc.DBTX
}

func NewPharmacyReadStore(queries PharmacyReadQueries, db sqlc.DBTX) *PharmacyReadStore {
	return &PharmacyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PharmacyReadStore) List(ctx context.Context) ([]*queries.PharmacyView, error) {
	rows, err := r.queries.ListPharmacies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pharmacies", err)
	}
	return mapPharmacyRows(rows)
}

func (r *PharmacyReadStore) FindByID(ctx context.Context, id int64) (*queries.PharmacyView, error) {
	row, err := r.queries.GetPharmacyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pharmacy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pharmacy by id", err)
	}
	return toPharmacyView(row)
}

func (r *PharmacyReadStore) ListOpenAt(ctx context.Context, day pharmacy.Day, at pharmacy.ClockTime) ([]*queries.PharmacyView, error) {
	rows, err := r.queries.ListPharmaciesOpenAt(ctx, r.db, sqlc.ListPharmaciesOpenAtParams{
		DayOfWeek: string(day),
		AtTime:    converter.ClockTimeToPgtime(at),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open pharmacies", err)
	}
	return mapPharmacyRows(rows)
}

func (r *PharmacyReadStore) CountMasksInPriceRange(ctx context.Context, minPrice ledger.Money, maxPrice *ledger.Money) ([]*queries.PharmacyMaskCountView, error) {
	params := sqlc.CountPharmacyMasksInPriceRangeParams{
		MinPrice: converter.MoneyToNumeric(minPrice),
	}
	if maxPrice != nil {
		params.MaxPrice = converter.MoneyToNumeric(*maxPrice)
	}

	rows, err := r.queries.CountPharmacyMasksInPriceRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count pharmacy masks in price range", err)
	}

	views := make([]*queries.PharmacyMaskCountView, 0, len(rows))
	for _, row := range rows {
		v, err := toPharmacyView(sqlc.Pharmacies{
			ID:          row.ID,
			Name:        row.Name,
			CashBalance: row.CashBalance,
			CreatedAt:   row.CreatedAt,
		})
		if err != nil {
			return nil, err
		}
		views = append(views, &queries.PharmacyMaskCountView{PharmacyView: *v, MaskCount: row.MaskCount})
	}
	return views, nil
}

// SearchByName expects pattern to have LIKE wildcards already escaped.
func (r *PharmacyReadStore) SearchByName(ctx context.Context, pattern string) ([]*queries.PharmacyView, error) {
	rows, err := r.queries.SearchPharmaciesByName(ctx, r.db, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search pharmacies", err)
	}
	return mapPharmacyRows(rows)
}

func mapPharmacyRows(rows []sqlc.Pharmacies) ([]*queries.PharmacyView, error) {
	views := make([]*queries.PharmacyView, 0, len(rows))
	for _, row := range rows {
		v, err := toPharmacyView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toPharmacyView(row sqlc.Pharmacies) (*queries.PharmacyView, error) {
	balance, err := converter.MoneyFromNumeric(row.CashBalance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert pharmacy balance", err)
	}
	return &queries.PharmacyView{
		ID:          row.ID,
		Name:        row.Name,
		CashBalance: balance,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
