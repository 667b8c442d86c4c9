package response

import (
	"time"

	"mask-ledger/internal/usecase/queries"
	"mask-ledger/internal/usecase/shared"
)

// Money is rendered as a string with two decimals and times as RFC 3339 UTC.

type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CashBalance string `json:"cash_balance"`
	CreatedAt   string `json:"created_at"`
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(vs))
	for i, v := range vs {
		res[i] = &UserResponse{
			ID:          v.ID,
			Name:        v.Name,
			CashBalance: v.CashBalance.String(),
			CreatedAt:   formatTime(v.CreatedAt),
		}
	}
	return res
}

type TopUserResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	TotalAmount      string `json:"total_amount"`
	TransactionCount int64  `json:"transaction_count"`
}

func FromTopUserViews(vs []*queries.TopUserView) []*TopUserResponse {
	res := make([]*TopUserResponse, len(vs))
	for i, v := range vs {
		res[i] = &TopUserResponse{
			ID:               v.ID,
			Name:             v.Name,
			TotalAmount:      v.TotalAmount.String(),
			TransactionCount: v.TransactionCount,
		}
	}
	return res
}

type PharmacyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CashBalance string `json:"cash_balance"`
	CreatedAt   string `json:"created_at"`
}

func FromPharmacyView(v *queries.PharmacyView) *PharmacyResponse {
	return &PharmacyResponse{
		ID:          v.ID,
		Name:        v.Name,
		CashBalance: v.CashBalance.String(),
		CreatedAt:   formatTime(v.CreatedAt),
	}
}

func FromPharmacyViews(vs []*queries.PharmacyView) []*PharmacyResponse {
	res := make([]*PharmacyResponse, len(vs))
	for i, v := range vs {
		res[i] = FromPharmacyView(v)
	}
	return res
}

type PharmacyMaskCountResponse struct {
	PharmacyResponse
	MaskCount int64 `json:"mask_count"`
}

func FromPharmacyMaskCountViews(vs []*queries.PharmacyMaskCountView) []*PharmacyMaskCountResponse {
	res := make([]*PharmacyMaskCountResponse, len(vs))
	for i, v := range vs {
		res[i] = &PharmacyMaskCountResponse{
			PharmacyResponse: *FromPharmacyView(&v.PharmacyView),
			MaskCount:        v.MaskCount,
		}
	}
	return res
}

type MaskResponse struct {
	ID         int64  `json:"id"`
	PharmacyID int64  `json:"pharmacy_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
}

func FromMaskViews(vs []*queries.MaskView) []*MaskResponse {
	res := make([]*MaskResponse, len(vs))
	for i, v := range vs {
		res[i] = &MaskResponse{
			ID:         v.ID,
			PharmacyID: v.PharmacyID,
			Name:       v.Name,
			Price:      v.Price.String(),
		}
	}
	return res
}

type OpeningHourResponse struct {
	ID         int64  `json:"id"`
	PharmacyID int64  `json:"pharmacy_id"`
	DayOfWeek  string `json:"day_of_week"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
}

func FromOpeningHourViews(vs []*queries.OpeningHourView) []*OpeningHourResponse {
	res := make([]*OpeningHourResponse, len(vs))
	for i, v := range vs {
		res[i] = &OpeningHourResponse{
			ID:         v.ID,
			PharmacyID: v.PharmacyID,
			DayOfWeek:  string(v.Day),
			OpenTime:   v.Open.String(),
			CloseTime:  v.Close.String(),
		}
	}
	return res
}

type TransactionResponse struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	PharmacyID        int64  `json:"pharmacy_id"`
	MaskID            int64  `json:"mask_id"`
	TransactionDate   string `json:"transaction_date"`
	TransactionAmount string `json:"transaction_amount"`
}

func FromTransactionViews(vs []*queries.TransactionView) []*TransactionResponse {
	res := make([]*TransactionResponse, len(vs))
	for i, v := range vs {
		res[i] = &TransactionResponse{
			ID:                v.ID,
			UserID:            v.UserID,
			PharmacyID:        v.PharmacyID,
			MaskID:            v.MaskID,
			TransactionDate:   formatTime(v.Date),
			TransactionAmount: v.Amount.String(),
		}
	}
	return res
}

func FromTransactionSnapshots(ss []*shared.TransactionSnapshot) []*TransactionResponse {
	res := make([]*TransactionResponse, len(ss))
	for i, s := range ss {
		res[i] = &TransactionResponse{
			ID:                s.ID,
			UserID:            s.UserID,
			PharmacyID:        s.PharmacyID,
			MaskID:            s.MaskID,
			TransactionDate:   formatTime(s.Date),
			TransactionAmount: s.Amount.String(),
		}
	}
	return res
}

type TransactionSummaryResponse struct {
	Count int64  `json:"count"`
	Total string `json:"total"`
}

func FromTransactionSummary(s *queries.TransactionSummary) *TransactionSummaryResponse {
	return &TransactionSummaryResponse{Count: s.Count, Total: s.Total.String()}
}

// SearchResponse carries only the categories that were searched; a searched
// category with no match is an empty array.
type SearchResponse struct {
	Masks      *[]*MaskResponse     `json:"masks,omitempty"`
	Pharmacies *[]*PharmacyResponse `json:"pharmacies,omitempty"`
}

func FromSearchResult(r *queries.SearchResult) *SearchResponse {
	res := &SearchResponse{}
	if r.Masks != nil {
		masks := FromMaskViews(r.Masks)
		res.Masks = &masks
	}
	if r.Pharmacies != nil {
		pharmacies := FromPharmacyViews(r.Pharmacies)
		res.Pharmacies = &pharmacies
	}
	return res
}

type InsufficientFundsDetail struct {
	Required  string `json:"required"`
	Available string `json:"available"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
