package components

import (
	"mask-ledger/internal/infra/readstore"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/infra/uow"
	"mask-ledger/internal/usecase/queries"
	"mask-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Pharmacy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PharmacyReadQueries)),
		),
		fx.Annotate(
			readstore.NewPharmacyReadStore,
			fx.As(new(queries.PharmacyReadStore)),
		),
		// Mask
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MaskReadQueries)),
		),
		fx.Annotate(
			readstore.NewMaskReadStore,
			fx.As(new(queries.MaskReadStore)),
		),
		// OpeningHour
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OpeningHourReadQueries)),
		),
		fx.Annotate(
			readstore.NewOpeningHourReadStore,
			fx.As(new(queries.OpeningHourReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
