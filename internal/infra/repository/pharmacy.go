package repository

import (
	"context"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/usecase/shared"
)

type PharmacyWriteQueries interface {
	LockPharmaciesForUpdate(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Pharmacies, error)
	CreditPharmacyBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CreditPharmacyBalanceParams) (int64, error)
	CreatePharmacy(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePharmacyParams) (sqlc.Pharmacies, error)
}

type PharmacyRepository struct {
	queries PharmacyWriteQueries
}

func NewPharmacyRepository(queries PharmacyWriteQueries) *PharmacyRepository {
	return &PharmacyRepository{queries: queries}
}

// LockByIDs fails with KindNotFound unless every id exists.
func (r *PharmacyRepository) LockByIDs(ctx context.Context, tx sqlc.DBTX, ids []int64) ([]*shared.PharmacySnapshot, error) {
	rows, err := r.queries.LockPharmaciesForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pharmacies", err)
	}
	if len(rows) != len(ids) {
		return nil, infra.WrapRepoErr("pharmacy not found", nil, infra.KindNotFound)
	}

	result := make([]*shared.PharmacySnapshot, len(rows))
	for i, row := range rows {
		snap, err := converter.PharmacySnapshotFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode pharmacy", err)
		}
		result[i] = snap
	}
	return result, nil
}

func (r *PharmacyRepository) Credit(ctx context.Context, tx sqlc.DBTX, id int64, amount ledger.Money) error {
	n, err := r.queries.CreditPharmacyBalance(ctx, tx, sqlc.CreditPharmacyBalanceParams{
		Amount: converter.MoneyToNumeric(amount),
		ID:     id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to credit pharmacy balance", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pharmacy not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PharmacyRepository) Create(ctx context.Context, tx sqlc.DBTX, name string, balance ledger.Money) (int64, error) {
	row, err := r.queries.CreatePharmacy(ctx, tx, sqlc.CreatePharmacyParams{
		Name:        name,
		CashBalance: converter.MoneyToNumeric(balance),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create pharmacy", err)
	}
	return row.ID, nil
}
