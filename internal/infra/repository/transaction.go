package repository

import (
	"context"

	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/usecase/shared"
)

type TransactionWriteQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) (sqlc.Transactions, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{queries: queries}
}

func (r *TransactionRepository) Create(ctx context.Context, tx sqlc.DBTX, t shared.NewTransaction) (*shared.TransactionSnapshot, error) {
	row, err := r.queries.CreateTransaction(ctx, tx, converter.TransactionToCreateParams(t))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create transaction", err)
	}
	snap, err := converter.TransactionSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transaction", err)
	}
	return snap, nil
}
