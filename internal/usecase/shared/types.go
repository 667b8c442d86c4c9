package shared

import (
	"time"

	"mask-ledger/internal/domain/ledger"
)

// Write-side snapshots keep commands independent of read-side view types.

type UserSnapshot struct {
	ID      int64
	Name    string
	Balance ledger.Money
}

type PharmacySnapshot struct {
	ID      int64
	Name    string
	Balance ledger.Money
}

type MaskSnapshot struct {
	ID         int64
	PharmacyID int64
	Name       string
	Price      ledger.Money
}

type TransactionSnapshot struct {
	ID         int64
	UserID     int64
	PharmacyID int64
	MaskID     int64
	Date       time.Time
	Amount     ledger.Money
}
