package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// PharmacySeed is one entry of the pharmacy seed document.
type PharmacySeed struct {
	Name         string          `json:"name" validate:"required"`
	CashBalance  decimal.Decimal `json:"cashBalance"`
	OpeningHours string          `json:"openingHours"`
	Masks        []MaskSeed      `json:"masks" validate:"dive"`
}

type MaskSeed struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// UserSeed is one entry of the user seed document.
type UserSeed struct {
	Name              string          `json:"name" validate:"required"`
	CashBalance       decimal.Decimal `json:"cashBalance"`
	PurchaseHistories []PurchaseSeed  `json:"purchaseHistories" validate:"dive"`
}

type PurchaseSeed struct {
	PharmacyName      string          `json:"pharmacyName" validate:"required"`
	MaskName          string          `json:"maskName" validate:"required"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	TransactionDate   string          `json:"transactionDate"`
}

var seedValidator = newSeedValidator()

// newSeedValidator reports fields by their JSON names.
func newSeedValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodePharmacySeeds reads and validates a pharmacy seed document.
func DecodePharmacySeeds(r io.Reader) ([]PharmacySeed, error) {
	var seeds []PharmacySeed
	if err := decodeSeeds(r, &seeds); err != nil {
		return nil, err
	}
	for i := range seeds {
		if err := validateSeed(fmt.Sprintf("pharmacies[%d]", i), &seeds[i]); err != nil {
			return nil, err
		}
	}
	return seeds, nil
}

// DecodeUserSeeds reads and validates a user seed document.
func DecodeUserSeeds(r io.Reader) ([]UserSeed, error) {
	var seeds []UserSeed
	if err := decodeSeeds(r, &seeds); err != nil {
		return nil, err
	}
	for i := range seeds {
		if err := validateSeed(fmt.Sprintf("users[%d]", i), &seeds[i]); err != nil {
			return nil, err
		}
	}
	return seeds, nil
}

func decodeSeeds(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode seed document"), errs.ErrInvalidRequest)
	}
	return nil
}

func validateSeed(path string, seed any) error {
	err := seedValidator.Struct(seed)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errs.As(err, &ve) {
		return errs.Wrap(err, "failed to validate seed document")
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		msgs = append(msgs, fmt.Sprintf("%s.%s failed on %s", path, field, fe.Tag()))
	}
	return errs.Invalid("%s", strings.Join(msgs, "; "))
}

// seedMoney rounds to cents; seed amounts may carry more precision than the ledger stores.
func seedMoney(field string, d decimal.Decimal) (ledger.Money, error) {
	m, err := ledger.NewMoney(d.Round(ledger.Scale))
	if err != nil {
		return ledger.Money{}, errs.Invalid("%s must not be negative", field)
	}
	return m, nil
}

var seedDateLayouts = []string{"2006-01-02 15:04:05", time.RFC3339}

// seedDate reads naive timestamps as UTC. An empty value yields ok=false.
func seedDate(s string) (t time.Time, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range seedDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true, nil
		}
	}
	return time.Time{}, false, errs.Invalid("transactionDate %q must be YYYY-MM-DD HH:MM:SS or RFC3339", s)
}
