package readstore

import (
	"context"
	"time"

	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/pkg/pgconv"
	"mask-ledger/internal/usecase/queries"
)

type UserReadQueries interface {
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
	TopUsersByTransactionAmount(ctx context.Context, db sqlc.DBTX, arg sqlc.TopUsersByTransactionAmountParams) ([]sqlc.TopUsersByTransactionAmountRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		balance, err := converter.MoneyFromNumeric(row.CashBalance)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert user balance", err)
		}
		views = append(views, &queries.UserView{
			ID:          row.ID,
			Name:        row.Name,
			CashBalance: balance,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *UserReadStore) TopByTransactionAmount(ctx context.Context, start, end time.Time, limit int32) ([]*queries.TopUserView, error) {
	rows, err := r.queries.TopUsersByTransactionAmount(ctx, r.db, sqlc.TopUsersByTransactionAmountParams{
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(end),
		MaxRows: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank users by transaction amount", err)
	}

	views := make([]*queries.TopUserView, 0, len(rows))
	for _, row := range rows {
		total, err := converter.MoneyFromNumeric(row.TotalAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert transaction total", err)
		}
		views = append(views, &queries.TopUserView{
			ID:               row.ID,
			Name:             row.Name,
			TotalAmount:      total,
			TransactionCount: row.TransactionCount,
		})
	}
	return views, nil
}
