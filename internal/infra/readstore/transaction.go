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

type TransactionReadQueries interface {
	ListTransactions(ctx context.Context, db sqlc.DBTX) ([]sqlc.Transactions, error)
	SummarizeTransactions(ctx context.Context, db sqlc.DBTX, arg sqlc.SummarizeTransactionsParams) (sqlc.SummarizeTransactionsRow, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) List(ctx context.Context) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTransactions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}

	views := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		amount, err := converter.MoneyFromNumeric(row.TransactionAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert transaction amount", err)
		}
		views = append(views, &queries.TransactionView{
			ID:         row.ID,
			UserID:     row.UserID,
			PharmacyID: row.PharmacyID,
			MaskID:     row.MaskID,
			Date:       pgconv.TimeFromPgtype(row.TransactionDate),
			Amount:     amount,
		})
	}
	return views, nil
}

func (r *TransactionReadStore) Summarize(ctx context.Context, start, end time.Time) (*queries.TransactionSummary, error) {
	row, err := r.queries.SummarizeTransactions(ctx, r.db, sqlc.SummarizeTransactionsParams{
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize transactions", err)
	}

	total, err := converter.MoneyFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert transaction total", err)
	}
	return &queries.TransactionSummary{Count: row.TransactionCount, Total: total}, nil
}
