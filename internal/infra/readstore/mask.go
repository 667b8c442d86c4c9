package readstore

import (
	"context"

	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/usecase/queries"
)

type MaskReadQueries interface {
	ListMasks(ctx context.Context, db sqlc.DBTX) ([]sqlc.Masks, error)
	ListMasksByPharmacy(ctx context.Context, db sqlc.DBTX, pharmacyID int64) ([]sqlc.Masks, error)
	SearchMasksByName(ctx context.Context, db sqlc.DBTX, pattern string) ([]sqlc.Masks, error)
}

type MaskReadStore struct {
	queries MaskReadQueries
	db      sqlc.DBTX
}

func NewMaskReadStore(queries MaskReadQueries, db sqlc.DBTX) *MaskReadStore {
	return &MaskReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MaskReadStore) List(ctx context.Context) ([]*queries.MaskView, error) {
	rows, err := r.queries.ListMasks(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list masks", err)
	}
	return mapMaskRows(rows)
}

func (r *MaskReadStore) ListByPharmacy(ctx context.Context, pharmacyID int64) ([]*queries.MaskView, error) {
	rows, err := r.queries.ListMasksByPharmacy(ctx, r.db, pharmacyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list masks by pharmacy", err)
	}
	return mapMaskRows(rows)
}

func (r *MaskReadStore) SearchByName(ctx context.Context, pattern string) ([]*queries.MaskView, error) {
	rows, err := r.queries.SearchMasksByName(ctx, r.db, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search masks", err)
	}
	return mapMaskRows(rows)
}

func mapMaskRows(rows []sqlc.Masks) ([]*queries.MaskView, error) {
	views := make([]*queries.MaskView, 0, len(rows))
	for _, row := range rows {
		price, err := converter.MoneyFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert mask price", err)
		}
		views = append(views, &queries.MaskView{
			ID:         row.ID,
			PharmacyID: row.PharmacyID,
			Name:       row.Name,
			Price:      price,
		})
	}
	return views, nil
}
