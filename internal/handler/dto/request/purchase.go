package request

import (
	"bytes"
	"encoding/json"
	"strconv"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/usecase/commands"
)

// Integer fields stay raw so a missing, null or mistyped value can be reported
// by name instead of failing the whole bind.
type PurchaseRequest struct {
	UserID    json.RawMessage       `json:"user_id" swaggertype:"integer"`
	Purchases []PurchaseItemRequest `json:"purchases"`
}

type PurchaseItemRequest struct {
	PharmacyID json.RawMessage `json:"pharmacy_id" swaggertype:"integer"`
	MaskID     json.RawMessage `json:"mask_id" swaggertype:"integer"`
	Quantity   json.RawMessage `json:"quantity" swaggertype:"integer"`
}

func (r *PurchaseRequest) ToCommand() (commands.PurchaseRequest, error) {
	userID, err := parseInteger(r.UserID)
	switch {
	case err != nil:
		return commands.PurchaseRequest{}, errs.Invalid("user_id must be a positive integer")
	case userID == nil:
		return commands.PurchaseRequest{}, errs.Invalid("user_id is required")
	case *userID <= 0:
		return commands.PurchaseRequest{}, errs.Invalid("user_id must be a positive integer")
	}

	items := make([]ledger.PurchaseItem, len(r.Purchases))
	for i, p := range r.Purchases {
		fields := []struct {
			name string
			raw  json.RawMessage
			dst  **int64
		}{
			{"pharmacy_id", p.PharmacyID, &items[i].PharmacyID},
			{"mask_id", p.MaskID, &items[i].MaskID},
			{"quantity", p.Quantity, &items[i].Quantity},
		}
		for _, f := range fields {
			v, err := parseInteger(f.raw)
			if err != nil {
				return commands.PurchaseRequest{}, errs.Invalid("purchases[%d].%s must be a positive integer", i, f.name)
			}
			*f.dst = v
		}
	}
	return commands.PurchaseRequest{UserID: *userID, Items: items}, nil
}

// parseInteger returns nil for an absent or null value. Quoted numbers,
// fractions and exponents are rejected.
func parseInteger(raw json.RawMessage) (*int64, error) {
	s := bytes.TrimSpace(raw)
	if len(s) == 0 || bytes.Equal(s, []byte("null")) {
		return nil, nil
	}
	n, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
