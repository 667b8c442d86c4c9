package queries

import (
	"context"
	"time"

	"mask-ledger/internal/domain/ledger"
)

type TransactionQueries interface {
	List(ctx context.Context) ([]*TransactionView, error)
	Summary(ctx context.Context, startDate, endDate string) (*TransactionSummary, error)
}

type TransactionReadStore interface {
	List(ctx context.Context) ([]*TransactionView, error)
	Summarize(ctx context.Context, start, end time.Time) (*TransactionSummary, error)
}

type transactionQueriesImpl struct {
	readStore TransactionReadStore
}

func NewTransactionQueries(readStore TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{readStore: readStore}
}

func (q *transactionQueriesImpl) List(ctx context.Context) ([]*TransactionView, error) {
	return q.readStore.List(ctx)
}

// Summary counts and totals the transactions dated within both calendar
// dates. A reversed range yields a zero summary.
func (q *transactionQueriesImpl) Summary(ctx context.Context, startDate, endDate string) (*TransactionSummary, error) {
	r, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if r.Empty() {
		return &TransactionSummary{Count: 0, Total: ledger.Zero}, nil
	}

	return q.readStore.Summarize(ctx, r.Start, r.End)
}
