package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries_mock.go -package=queriesmock mask-ledger/internal/usecase/queries MaskQueries,OpeningHourQueries,PharmacyQueries,SearchQueries,TransactionQueries,UserQueries

import (
	"time"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
)

// UserView represents read-optimized user data
type UserView struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	CashBalance ledger.Money `json:"cash_balance"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TopUserView is a user ranked by the sum of their transaction amounts
type TopUserView struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	TotalAmount      ledger.Money `json:"total_amount"`
	TransactionCount int64        `json:"transaction_count"`
}

// PharmacyView represents read-optimized pharmacy data
type PharmacyView struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	CashBalance ledger.Money `json:"cash_balance"`
	CreatedAt   time.Time    `json:"created_at"`
}

// PharmacyMaskCountView carries the number of masks inside the queried price range
type PharmacyMaskCountView struct {
	PharmacyView
	MaskCount int64 `json:"mask_count"`
}

type MaskView struct {
	ID         int64        `json:"id"`
	PharmacyID int64        `json:"pharmacy_id"`
	Name       string       `json:"name"`
	Price      ledger.Money `json:"price"`
}

type OpeningHourView struct {
	ID         int64              `json:"id"`
	PharmacyID int64              `json:"pharmacy_id"`
	Day        pharmacy.Day       `json:"day_of_week"`
	Open       pharmacy.ClockTime `json:"open_time"`
	Close      pharmacy.ClockTime `json:"close_time"`
}

type TransactionView struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"user_id"`
	PharmacyID int64        `json:"pharmacy_id"`
	MaskID     int64        `json:"mask_id"`
	Date       time.Time    `json:"transaction_date"`
	Amount     ledger.Money `json:"transaction_amount"`
}

type TransactionSummary struct {
	Count int64        `json:"count"`
	Total ledger.Money `json:"total"`
}

// SearchResult holds only the categories that were requested; the other is nil.
type SearchResult struct {
	Masks      []*MaskView
	Pharmacies []*PharmacyView
}
