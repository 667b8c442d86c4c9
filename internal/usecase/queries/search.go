package queries

import (
	"context"
	"strings"

	"mask-ledger/internal/pkg/errs"
)

type SearchQueries interface {
	Search(ctx context.Context, query, category string) (*SearchResult, error)
}

type searchQueriesImpl struct {
	pharmacies PharmacyReadStore
	masks      MaskReadStore
}

func NewSearchQueries(pharmacies PharmacyReadStore, masks MaskReadStore) SearchQueries {
	return &searchQueriesImpl{
		pharmacies: pharmacies,
		masks:      masks,
	}
}

func (q *searchQueriesImpl) Search(ctx context.Context, query, category string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Invalid("query is required")
	}
	c, err := ParseSearchCategory(category)
	if err != nil {
		return nil, err
	}

	pattern := escapeLike(query)
	result := &SearchResult{}
	if c.includes(SearchMasks) {
		if result.Masks, err = q.masks.SearchByName(ctx, pattern); err != nil {
			return nil, err
		}
	}
	if c.includes(SearchPharmacies) {
		if result.Pharmacies, err = q.pharmacies.SearchByName(ctx, pattern); err != nil {
			return nil, err
		}
	}
	return result, nil
}
