package ledger

import (
	"slices"

	"mask-ledger/internal/pkg/errs"
)

// PurchaseItem is one requested line as received from the client. Pointer
// fields distinguish an omitted value from an explicit zero.
type PurchaseItem struct {
	PharmacyID *int64
	MaskID     *int64
	Quantity   *int64
}

// LineItem is a PurchaseItem whose fields are all present and well-formed.
type LineItem struct {
	PharmacyID int64
	MaskID     int64
	Quantity   int64
}

// ValidateItems checks shape only. It does not touch storage.
func ValidateItems(items []PurchaseItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, errs.Invalid("purchases must contain at least one item")
	}

	lines := make([]LineItem, len(items))
	for i, it := range items {
		switch {
		case it.PharmacyID == nil:
			return nil, errs.Invalid("purchases[%d].pharmacy_id is required", i)
		case it.MaskID == nil:
			return nil, errs.Invalid("purchases[%d].mask_id is required", i)
		case it.Quantity == nil:
			return nil, errs.Invalid("purchases[%d].quantity is required", i)
		case *it.PharmacyID <= 0:
			return nil, errs.Invalid("purchases[%d].pharmacy_id must be a positive integer", i)
		case *it.MaskID <= 0:
			return nil, errs.Invalid("purchases[%d].mask_id must be a positive integer", i)
		case *it.Quantity <= 0:
			return nil, errs.Invalid("purchases[%d].quantity must be a positive integer", i)
		}
		lines[i] = LineItem{
			PharmacyID: *it.PharmacyID,
			MaskID:     *it.MaskID,
			Quantity:   *it.Quantity,
		}
	}
	return lines, nil
}

// PricedLine is a LineItem with the mask price read at purchase time.
type PricedLine struct {
	LineItem
	UnitPrice Money
	Cost      Money
}

// Plan is the fully computed effect of a purchase, built before any balance
// is touched.
type Plan struct {
	Lines   []PricedLine
	Total   Money
	credits map[int64]Money
}

// NewPlan prices every line. unitPrices must be index-aligned with lines.
func NewPlan(lines []LineItem, unitPrices []Money) (*Plan, error) {
	if len(lines) != len(unitPrices) {
		return nil, errs.Newf("plan: %d lines but %d prices", len(lines), len(unitPrices))
	}

	p := &Plan{
		Lines:   make([]PricedLine, len(lines)),
		credits: make(map[int64]Money),
	}
	for i, line := range lines {
		cost := unitPrices[i].Times(line.Quantity)
		p.Lines[i] = PricedLine{LineItem: line, UnitPrice: unitPrices[i], Cost: cost}
		p.Total = p.Total.Add(cost)
		p.credits[line.PharmacyID] = p.credits[line.PharmacyID].Add(cost)
	}
	return p, nil
}

// PharmacyIDs returns the distinct pharmacies credited by the plan in
// ascending order, which is also the order their rows must be locked in.
func (p *Plan) PharmacyIDs() []int64 {
	ids := make([]int64, 0, len(p.credits))
	for id := range p.credits {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CreditFor is the aggregate amount owed to one pharmacy.
func (p *Plan) CreditFor(pharmacyID int64) Money {
	return p.credits[pharmacyID]
}

// CheckFunds fails with *InsufficientFundsError when balance cannot cover the total.
func (p *Plan) CheckFunds(balance Money) error {
	if balance.LessThan(p.Total) {
		return &InsufficientFundsError{Required: p.Total, Available: balance}
	}
	return nil
}

type InsufficientFundsError struct {
	Required  Money
	Available Money
}

func (e *InsufficientFundsError) Error() string {
	return "insufficient funds: required " + e.Required.String() + ", available " + e.Available.String()
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == errs.ErrInsufficientFunds
}
