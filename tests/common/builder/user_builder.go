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

type UserBuilder struct {
	ID          int64
	Name        string
	CashBalance ledger.Money
	CreatedAt   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          1,
		Name:        "Yvonne Guerrero",
		CashBalance: ledger.MustMoney("191.83"),
		CreatedAt:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:          u.ID,
		Name:        u.Name,
		CashBalance: converter.MoneyToNumeric(u.CashBalance),
		CreatedAt:   pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Name:        u.Name,
		CashBalance: u.CashBalance,
		CreatedAt:   u.CreatedAt,
	}
}
