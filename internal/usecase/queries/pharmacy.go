package queries

import (
	"context"
	"sort"
	"strings"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type PharmacyQueries interface {
	List(ctx context.Context) ([]*PharmacyView, error)
	OpenAt(ctx context.Context, day, at string) ([]*PharmacyView, error)
	Masks(ctx context.Context, pharmacyID int64, sortBy string) ([]*MaskView, error)
	FilterByMaskCount(ctx context.Context, f MaskCountFilter) ([]*PharmacyMaskCountView, error)
}

// MaskCountFilter holds the raw query parameters of the mask-count filter.
type MaskCountFilter struct {
	MinPrice string
	MaxPrice string
	Compare  string
	Count    string
}

type PharmacyReadStore interface {
	List(ctx context.Context) ([]*PharmacyView, error)
	FindByID(ctx context.Context, id int64) (*PharmacyView, error)
	ListOpenAt(ctx context.Context, day pharmacy.Day, at pharmacy.ClockTime) ([]*PharmacyView, error)
	// CountMasksInPriceRange returns every pharmacy with the number of its masks
	// priced in [minPrice, maxPrice]; a nil maxPrice is unbounded.
	CountMasksInPriceRange(ctx context.Context, minPrice ledger.Money, maxPrice *ledger.Money) ([]*PharmacyMaskCountView, error)
	SearchByName(ctx context.Context, pattern string) ([]*PharmacyView, error)
}

type pharmacyQueriesImpl struct {
	readStore     PharmacyReadStore
	maskReadStore MaskReadStore
}

func NewPharmacyQueries(readStore PharmacyReadStore, maskReadStore MaskReadStore) PharmacyQueries {
	return &pharmacyQueriesImpl{
		readStore:     readStore,
		maskReadStore: maskReadStore,
	}
}

func (q *pharmacyQueriesImpl) List(ctx context.Context) ([]*PharmacyView, error) {
	return q.readStore.List(ctx)
}

func (q *pharmacyQueriesImpl) OpenAt(ctx context.Context, day, at string) ([]*PharmacyView, error) {
	day, at = strings.TrimSpace(day), strings.TrimSpace(at)
	switch {
	case day == "" && at == "":
		return q.readStore.List(ctx)
	case day == "":
		return nil, errs.Invalid("day is required when time is given")
	case at == "":
		return nil, errs.Invalid("time is required when day is given")
	}

	d, err := pharmacy.ParseDay(day)
	if err != nil {
		return nil, err
	}
	t, err := pharmacy.ParseClockTime(at)
	if err != nil {
		return nil, err
	}

	return q.readStore.ListOpenAt(ctx, d, t)
}

func (q *pharmacyQueriesImpl) Masks(ctx context.Context, pharmacyID int64, sortBy string) ([]*MaskView, error) {
	field, err := ParseSortField(sortBy)
	if err != nil {
		return nil, err
	}

	if _, err := q.readStore.FindByID(ctx, pharmacyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("pharmacy %d not found", pharmacyID)
		}
		return nil, err
	}

	masks, err := q.maskReadStore.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	sortMasks(masks, field)
	return masks, nil
}

func sortMasks(masks []*MaskView, field SortField) {
	var less func(a, b *MaskView) bool
	switch field {
	case SortNameAsc:
		less = func(a, b *MaskView) bool { return compareNames(a.Name, b.Name) < 0 }
	case SortNameDesc:
		less = func(a, b *MaskView) bool { return compareNames(a.Name, b.Name) > 0 }
	case SortPriceAsc:
		less = func(a, b *MaskView) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		less = func(a, b *MaskView) bool { return b.Price.LessThan(a.Price) }
	default:
		return
	}
	sort.SliceStable(masks, func(i, j int) bool { return less(masks[i], masks[j]) })
}

func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func (q *pharmacyQueriesImpl) FilterByMaskCount(ctx context.Context, f MaskCountFilter) ([]*PharmacyMaskCountView, error) {
	minPrice, err := parsePrice("min_price", f.MinPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := parsePrice("max_price", f.MaxPrice)
	if err != nil {
		return nil, err
	}
	cmp, err := ParseComparison(f.Compare)
	if err != nil {
		return nil, err
	}
	count, err := parseCount(f.Count)
	if err != nil {
		return nil, err
	}

	if minPrice != nil && maxPrice != nil && maxPrice.LessThan(*minPrice) {
		return nil, errs.Invalid("min_price must not be greater than max_price")
	}
	if cmp != CompareNone && count == nil {
		return nil, errs.Invalid("count is required when compare is given")
	}

	lowerBound, err := priceBound(minPrice, decimal.Decimal.RoundCeil)
	if err != nil {
		return nil, err
	}
	upper, err := priceBound(maxPrice, decimal.Decimal.RoundFloor)
	if err != nil {
		return nil, err
	}
	lower := patch.Coalesce(lowerBound, ledger.Zero)

	rows, err := q.readStore.CountMasksInPriceRange(ctx, lower, upper)
	if err != nil {
		return nil, err
	}
	if cmp == CompareNone {
		return rows, nil
	}

	filtered := make([]*PharmacyMaskCountView, 0, len(rows))
	for _, r := range rows {
		if cmp.Match(r.MaskCount, *count) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
