package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"mask-ledger/cmd/bootstrap"
	"mask-ledger/internal/pkg/config"
	"mask-ledger/internal/pkg/patch"
	"mask-ledger/internal/usecase/commands"

	"go.uber.org/fx"
)

const importTimeout = 5 * time.Minute

type loaderFlags struct {
	pharmacies string
	users      string
}

func loadSeeds(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, flags loaderFlags, importer commands.ImportCommands) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			pharmacyPath := patch.FirstNonZero(flags.pharmacies, cfg.Import.PharmaciesFile)
			userPath := patch.FirstNonZero(flags.users, cfg.Import.UsersFile)

			pharmacies, err := readSeeds(pharmacyPath, commands.DecodePharmacySeeds)
			if err != nil {
				return err
			}
			users, err := readSeeds(userPath, commands.DecodeUserSeeds)
			if err != nil {
				return err
			}

			if _, err := importer.Import(context.Background(), pharmacies, users); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return shutdowner.Shutdown()
		},
	})
}

func readSeeds[T any](path string, decode func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	seeds, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	slog.Info("Seed file read", "path", path, "records", len(seeds))
	return seeds, nil
}

func main() {
	var flags loaderFlags
	flag.StringVar(&flags.pharmacies, "pharmacies", "", "pharmacy seed file (defaults to IMPORT_PHARMACIES_FILE)")
	flag.StringVar(&flags.users, "users", "", "user seed file (defaults to IMPORT_USERS_FILE)")
	flag.Parse()

	ctx := context.Background()
	app := fx.New(
		fx.NopLogger,
		fx.StartTimeout(importTimeout),
		bootstrap.LoggerModule,
		bootstrap.LoaderModule,
		fx.Supply(flags),
		fx.Invoke(loadSeeds),
	)

	if err := app.Start(ctx); err != nil {
		slog.Error("Seed import failed", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to stop loader", "error", err)
	}
}
