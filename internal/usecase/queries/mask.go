package queries

import "context"

type MaskQueries interface {
	List(ctx context.Context) ([]*MaskView, error)
}

type MaskReadStore interface {
	List(ctx context.Context) ([]*MaskView, error)
	ListByPharmacy(ctx context.Context, pharmacyID int64) ([]*MaskView, error)
	SearchByName(ctx context.Context, pattern string) ([]*MaskView, error)
}

type maskQueriesImpl struct {
	readStore MaskReadStore
}

func NewMaskQueries(readStore MaskReadStore) MaskQueries {
	return &maskQueriesImpl{readStore: readStore}
}

func (q *maskQueriesImpl) List(ctx context.Context) ([]*MaskView, error) {
	return q.readStore.List(ctx)
}
