package components

import (
	"mask-ledger/internal/pkg/clock"
	"mask-ledger/internal/usecase/commands"
	"mask-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPurchaseUseCase,
		commands.NewImportUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPharmacyQueries,
		queries.NewMaskQueries,
		queries.NewOpeningHourQueries,
		queries.NewTransactionQueries,
		queries.NewSearchQueries,
	),
)
