package converter

import (
	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// MoneyFromNumeric rejects NULL, NaN and negative values stored in NUMERIC columns.
func MoneyFromNumeric(n pgtype.Numeric) (ledger.Money, error) {
	d, err := pgconv.NumericToDecimal(n)
	if err != nil {
		return ledger.Money{}, err
	}
	m, err := ledger.NewMoney(d.Round(ledger.Scale))
	if err != nil {
		return ledger.Money{}, errs.Wrap(err, "stored amount out of range")
	}
	return m, nil
}

func MoneyToNumeric(m ledger.Money) pgtype.Numeric {
	return pgconv.DecimalToNumeric(m.Decimal())
}

func ClockTimeFromPgtime(t pgtype.Time) pharmacy.ClockTime {
	return pharmacy.ClockTimeFromSeconds(pgconv.SecondsFromPgtime(t))
}

func ClockTimeToPgtime(t pharmacy.ClockTime) pgtype.Time {
	return pgconv.SecondsToPgtime(t.Seconds())
}
