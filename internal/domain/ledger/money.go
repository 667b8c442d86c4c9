package ledger

import (
	"mask-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every stored amount carries.
const Scale = 2

var (
	ErrNegativeAmount = errs.New("amount must not be negative")
	ErrAmountScale    = errs.New("amount must have at most 2 decimal places")
)

// Money is a non-negative fixed-point amount with two fractional digits.
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

var Zero = Money{}

// NewMoney validates d and returns it as Money.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.Mark(errs.Newf("%s is negative", d.String()), ErrNegativeAmount)
	}
	if !d.Equal(d.Truncate(Scale)) {
		return Money{}, errs.Mark(errs.Newf("%s has more than %d decimal places", d.String(), Scale), ErrAmountScale)
	}
	return Money{d: d}, nil
}

// ParseMoney parses a decimal string such as "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Wrapf(err, "invalid amount %q", s)
	}
	return NewMoney(d)
}

// MustMoney is ParseMoney for literals known to be valid.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Sub returns m - o. It fails with ErrNegativeAmount when o > m.
func (m Money) Sub(o Money) (Money, error) {
	if m.LessThan(o) {
		return Money{}, errs.Mark(errs.Newf("%s minus %s is negative", m, o), ErrNegativeAmount)
	}
	return Money{d: m.d.Sub(o.d)}, nil
}

// Times multiplies by a positive item quantity.
func (m Money) Times(quantity int64) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(quantity))}
}

func (m Money) LessThan(o Money) bool {
	return m.d.LessThan(o.d)
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.d.StringFixed(Scale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return errs.Wrap(err, "invalid amount")
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
