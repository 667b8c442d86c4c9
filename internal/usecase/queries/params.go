package queries

import (
	"strconv"
	"strings"
	"time"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopUsersLimit = 10
	MaxTopUsersLimit     = 100

	dateLayout = "2006-01-02"
)

// SortField orders masks within a pharmacy. A leading '-' means descending.
type SortField string

const (
	SortNone      SortField = ""
	SortNameAsc   SortField = "name"
	SortNameDesc  SortField = "-name"
	SortPriceAsc  SortField = "price"
	SortPriceDesc SortField = "-price"
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.TrimSpace(s)); f {
	case SortNone, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return f, nil
	default:
		return "", errs.Invalid("sort_by must be one of name, -name, price, -price")
	}
}

// Comparison is applied as: mask_count <op> count.
type Comparison string

const (
	CompareNone        Comparison = ""
	CompareGreater     Comparison = "gt"
	CompareLess        Comparison = "lt"
	CompareGreaterOrEq Comparison = "gte"
	CompareLessOrEq    Comparison = "lte"
)

func ParseComparison(s string) (Comparison, error) {
	switch c := Comparison(strings.ToLower(strings.TrimSpace(s))); c {
	case CompareNone, CompareGreater, CompareLess, CompareGreaterOrEq, CompareLessOrEq:
		return c, nil
	default:
		return "", errs.Invalid("compare must be one of gt, lt, gte, lte")
	}
}

func (c Comparison) Match(value, threshold int64) bool {
	switch c {
	case CompareGreater:
		return value > threshold
	case CompareLess:
		return value < threshold
	case CompareGreaterOrEq:
		return value >= threshold
	case CompareLessOrEq:
		return value <= threshold
	default:
		return true
	}
}

type SearchCategory string

const (
	SearchAll        SearchCategory = ""
	SearchMasks      SearchCategory = "masks"
	SearchPharmacies SearchCategory = "pharmacies"
)

func ParseSearchCategory(s string) (SearchCategory, error) {
	switch c := SearchCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case SearchAll, SearchMasks, SearchPharmacies:
		return c, nil
	default:
		return "", errs.Invalid("category must be one of masks, pharmacies")
	}
}

func (c SearchCategory) includes(other SearchCategory) bool {
	return c == SearchAll || c == other
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(param, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, errs.Invalid("%s must be provided in YYYY-MM-DD format.", param)
	}
	return t, nil
}

// DateRange is the half-open instant range [Start, End) covering both
// calendar dates inclusively.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func ParseDateRange(startDate, endDate string) (DateRange, error) {
	start, err := ParseDate("start_date", startDate)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate("end_date", endDate)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end.AddDate(0, 0, 1)}, nil
}

// Empty reports whether start_date came after end_date.
func (r DateRange) Empty() bool {
	return !r.Start.Before(r.End)
}

func ParseLimit(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTopUsersLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxTopUsersLimit {
		return 0, errs.Invalid("limit must be an integer between 1 and %d", MaxTopUsersLimit)
	}
	return int32(n), nil
}

func parsePrice(param, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, errs.Invalid("%s must be a non-negative number", param)
	}
	return &d, nil
}

// priceBound converts a parsed bound to Money. Stored prices have two
// fractional digits, so rounding a finer bound toward the inside of the
// range selects exactly the same masks.
func priceBound(d *decimal.Decimal, round func(decimal.Decimal, int32) decimal.Decimal) (*ledger.Money, error) {
	if d == nil {
		return nil, nil
	}
	m, err := ledger.NewMoney(round(*d, ledger.Scale))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func parseCount(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil, errs.Invalid("count must be a non-negative integer")
	}
	return &n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
