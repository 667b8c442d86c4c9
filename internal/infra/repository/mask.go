package repository

import (
	"context"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
)

type MaskWriteQueries interface {
	CreateMask(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMaskParams) (sqlc.Masks, error)
}

type MaskRepository struct {
	queries MaskWriteQueries
}

func NewMaskRepository(queries MaskWriteQueries) *MaskRepository {
	return &MaskRepository{queries: queries}
}

func (r *MaskRepository) Create(ctx context.Context, tx sqlc.DBTX, pharmacyID int64, name string, price ledger.Money) (int64, error) {
	row, err := r.queries.CreateMask(ctx, tx, sqlc.CreateMaskParams{
		PharmacyID: pharmacyID,
		Name:       name,
		Price:      converter.MoneyToNumeric(price),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create mask", err)
	}
	return row.ID, nil
}
