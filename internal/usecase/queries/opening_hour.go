package queries

import "context"

type OpeningHourQueries interface {
	List(ctx context.Context) ([]*OpeningHourView, error)
}

type OpeningHourReadStore interface {
	List(ctx context.Context) ([]*OpeningHourView, error)
}

type openingHourQueriesImpl struct {
	readStore OpeningHourReadStore
}

func NewOpeningHourQueries(readStore OpeningHourReadStore) OpeningHourQueries {
	return &openingHourQueriesImpl{readStore: readStore}
}

func (q *openingHourQueriesImpl) List(ctx context.Context) ([]*OpeningHourView, error) {
	return q.readStore.List(ctx)
}
