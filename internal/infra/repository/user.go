package repository

import (
	"context"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/pkg/pgconv"
	"mask-ledger/internal/usecase/shared"
)

type UserWriteQueries interface {
	GetUserForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	DebitUserBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitUserBalanceParams) (int64, error)
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id int64) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	snap, err := converter.UserSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err)
	}
	return snap, nil
}

// Debit never drives a balance below zero; a guarded update that matches no
// row is reported as KindCheckViolated.
func (r *UserRepository) Debit(ctx context.Context, tx sqlc.DBTX, id int64, amount ledger.Money) error {
	n, err := r.queries.DebitUserBalance(ctx, tx, sqlc.DebitUserBalanceParams{
		Amount: converter.MoneyToNumeric(amount),
		ID:     id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to debit user balance", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user balance debit rejected", nil, infra.KindCheckViolated)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, name string, balance ledger.Money) (int64, error) {
	row, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		Name:        name,
		CashBalance: converter.MoneyToNumeric(balance),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}
