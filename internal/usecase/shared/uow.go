package shared

import (
	"context"
	"time"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Pharmacies() PharmacyRepository
	Masks() MaskRepository
	OpeningHours() OpeningHourRepository
	Transactions() TransactionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are validation reads executed inside the write transaction.
type CommandReads interface {
	MaskByID(ctx context.Context, id int64) (*MaskSnapshot, error)
	PharmacyByName(ctx context.Context, name string) (*PharmacySnapshot, error)
	MaskByPharmacyAndName(ctx context.Context, pharmacyID int64, name string) (*MaskSnapshot, error)
}

type UserRepository interface {
	// LockByID reads the user row with SELECT ... FOR UPDATE.
	LockByID(ctx context.Context, tx sqlc.DBTX, id int64) (*UserSnapshot, error)
	Debit(ctx context.Context, tx sqlc.DBTX, id int64, amount ledger.Money) error
	Create(ctx context.Context, tx sqlc.DBTX, name string, balance ledger.Money) (int64, error)
}

type PharmacyRepository interface {
	// LockByIDs locks rows in ascending id order and returns them in that order.
	LockByIDs(ctx context.Context, tx sqlc.DBTX, ids []int64) ([]*PharmacySnapshot, error)
	Credit(ctx context.Context, tx sqlc.DBTX, id int64, amount ledger.Money) error
	Create(ctx context.Context, tx sqlc.DBTX, name string, balance ledger.Money) (int64, error)
}

type MaskRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, pharmacyID int64, name string, price ledger.Money) (int64, error)
}

type OpeningHourRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, pharmacyID int64, hour pharmacy.OpeningHour) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t NewTransaction) (*TransactionSnapshot, error)
}

type NewTransaction struct {
	UserID     int64
	PharmacyID int64
	MaskID     int64
	Date       time.Time
	Amount     ledger.Money
}
