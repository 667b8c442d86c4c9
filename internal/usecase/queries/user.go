package queries

import (
	"context"
	"time"
)

type UserQueries interface {
	List(ctx context.Context) ([]*UserView, error)
	TopByTransactionAmount(ctx context.Context, startDate, endDate, limit string) ([]*TopUserView, error)
}

type UserReadStore interface {
	List(ctx context.Context) ([]*UserView, error)
	// TopByTransactionAmount ranks users by their transaction sum in [start, end),
	// descending with ties broken by ascending id.
	TopByTransactionAmount(ctx context.Context, start, end time.Time, limit int32) ([]*TopUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}

func (q *userQueriesImpl) TopByTransactionAmount(ctx context.Context, startDate, endDate, limit string) ([]*TopUserView, error) {
	r, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	n, err := ParseLimit(limit)
	if err != nil {
		return nil, err
	}
	if r.Empty() {
		return []*TopUserView{}, nil
	}

	return q.readStore.TopByTransactionAmount(ctx, r.Start, r.End, n)
}
