package converter

import (
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/pkg/pgconv"
	"mask-ledger/internal/usecase/shared"
)

func UserSnapshotFromRow(row sqlc.Users) (*shared.UserSnapshot, error) {
	balance, err := MoneyFromNumeric(row.CashBalance)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{ID: row.ID, Name: row.Name, Balance: balance}, nil
}

func PharmacySnapshotFromRow(row sqlc.Pharmacies) (*shared.PharmacySnapshot, error) {
	balance, err := MoneyFromNumeric(row.CashBalance)
	if err != nil {
		return nil, err
	}
	return &shared.PharmacySnapshot{ID: row.ID, Name: row.Name, Balance: balance}, nil
}

func MaskSnapshotFromRow(row sqlc.Masks) (*shared.MaskSnapshot, error) {
	price, err := MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return &shared.MaskSnapshot{ID: row.ID, PharmacyID: row.PharmacyID, Name: row.Name, Price: price}, nil
}

func TransactionSnapshotFromRow(row sqlc.Transactions) (*shared.TransactionSnapshot, error) {
	amount, err := MoneyFromNumeric(row.TransactionAmount)
	if err != nil {
		return nil, err
	}
	return &shared.TransactionSnapshot{
		ID:         row.ID,
		UserID:     row.UserID,
		PharmacyID: row.PharmacyID,
		MaskID:     row.MaskID,
		Date:       pgconv.TimeFromPgtype(row.TransactionDate),
		Amount:     amount,
	}, nil
}

func TransactionToCreateParams(t shared.NewTransaction) sqlc.CreateTransactionParams {
	return sqlc.CreateTransactionParams{
		UserID:            t.UserID,
		PharmacyID:        t.PharmacyID,
		MaskID:            t.MaskID,
		TransactionDate:   pgconv.TimeToPgtype(t.Date),
		TransactionAmount: MoneyToNumeric(t.Amount),
	}
}
