package bootstrap

import (
	"mask-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP server.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// LoaderModule wires the seed importer without the HTTP layer.
var LoaderModule = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
)
