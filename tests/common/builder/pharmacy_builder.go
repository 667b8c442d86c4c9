//go:build unit || e2e

package builder

import (
	"time"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/infra/converter"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PharmacyBuilder struct {
	ID          int64
	Name        string
	CashBalance ledger.Money
	CreatedAt   time.Time
}

func NewPharmacyBuilder() *PharmacyBuilder {
	return &PharmacyBuilder{
		ID:          1,
		Name:        "DFW Wellness",
		CashBalance: ledger.MustMoney("328.41"),
		CreatedAt:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (p *PharmacyBuilder) With(mutate func(*PharmacyBuilder)) *PharmacyBuilder {
	mutate(p)
	return p
}

func (p *PharmacyBuilder) BuildInfra() sqlc.Pharmacies {
	return sqlc.Pharmacies{
		ID:          p.ID,
		Name:        p.Name,
		CashBalance: converter.MoneyToNumeric(p.CashBalance),
		CreatedAt:   pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}

func (p *PharmacyBuilder) BuildView() *queries.PharmacyView {
	return &queries.PharmacyView{
		ID:          p.ID,
		Name:        p.Name,
		CashBalance: p.CashBalance,
		CreatedAt:   p.CreatedAt,
	}
}

type MaskBuilder struct {
	ID         int64
	PharmacyID int64
	Name       string
	Price      ledger.Money
}

func NewMaskBuilder() *MaskBuilder {
	return &MaskBuilder{
		ID:         1,
		PharmacyID: 1,
		Name:       "True Barrier (green) (3 per pack)",
		Price:      ledger.MustMoney("13.70"),
	}
}

func (m *MaskBuilder) With(mutate func(*MaskBuilder)) *MaskBuilder {
	mutate(m)
	return m
}

func (m *MaskBuilder) BuildInfra() sqlc.Masks {
	return sqlc.Masks{
		ID:         m.ID,
		PharmacyID: m.PharmacyID,
		Name:       m.Name,
		Price:      converter.MoneyToNumeric(m.Price),
	}
}

func (m *MaskBuilder) BuildView() *queries.MaskView {
	return &queries.MaskView{
		ID:         m.ID,
		PharmacyID: m.PharmacyID,
		Name:       m.Name,
		Price:      m.Price,
	}
}
