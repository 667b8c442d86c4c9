package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/pkg/clock"
	"mask-ledger/internal/pkg/metrics"
	"mask-ledger/internal/usecase/shared"
)

// ImportReport counts what an import wrote and what it had to skip.
type ImportReport struct {
	Pharmacies          int
	Masks               int
	OpeningHours        int
	Users               int
	Transactions        int
	SkippedTransactions int
	SkippedHourSegments int
}

type ImportCommands interface {
	Import(ctx context.Context, pharmacies []PharmacySeed, users []UserSeed) (*ImportReport, error)
}

type importUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewImportUseCase(uow shared.UnitOfWork, clk clock.Clock) ImportCommands {
	return &importUseCaseImpl{uow: uow, clock: clk}
}

// Import loads both seed documents in a single unit of work. Purchase
// histories that name an unknown pharmacy or mask are skipped with a warning;
// any storage error aborts the whole import.
func (uc *importUseCaseImpl) Import(ctx context.Context, pharmacies []PharmacySeed, users []UserSeed) (*ImportReport, error) {
	var report *ImportReport
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r := &ImportReport{}
		now := uc.clock.Now()
		for i, seed := range pharmacies {
			if err := importPharmacy(ctx, tx, i, seed, r); err != nil {
				return err
			}
		}
		for i, seed := range users {
			if err := importUser(ctx, tx, i, seed, now, r); err != nil {
				return err
			}
		}
		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ImportedRowsTotal.WithLabelValues("pharmacy").Add(float64(report.Pharmacies))
	metrics.ImportedRowsTotal.WithLabelValues("mask").Add(float64(report.Masks))
	metrics.ImportedRowsTotal.WithLabelValues("opening_hour").Add(float64(report.OpeningHours))
	metrics.ImportedRowsTotal.WithLabelValues("user").Add(float64(report.Users))
	metrics.ImportedRowsTotal.WithLabelValues("transaction").Add(float64(report.Transactions))

	slog.Info("Import completed",
		"pharmacies", report.Pharmacies,
		"masks", report.Masks,
		"opening_hours", report.OpeningHours,
		"users", report.Users,
		"transactions", report.Transactions,
		"skipped_transactions", report.SkippedTransactions,
		"skipped_hour_segments", report.SkippedHourSegments)
	return report, nil
}

func importPharmacy(ctx context.Context, tx shared.Tx, i int, seed PharmacySeed, r *ImportReport) error {
	balance, err := seedMoney(fmt.Sprintf("pharmacies[%d].cashBalance", i), seed.CashBalance)
	if err != nil {
		return err
	}
	id, err := tx.Pharmacies().Create(ctx, tx.DB(), seed.Name, balance)
	if err != nil {
		return err
	}
	r.Pharmacies++

	for j, m := range seed.Masks {
		price, err := seedMoney(fmt.Sprintf("pharmacies[%d].masks[%d].price", i, j), m.Price)
		if err != nil {
			return err
		}
		if _, err := tx.Masks().Create(ctx, tx.DB(), id, m.Name, price); err != nil {
			return err
		}
		r.Masks++
	}

	hours, skipped := pharmacy.ParseOpeningHours(seed.OpeningHours)
	for _, segment := range skipped {
		slog.Warn("Skipping malformed opening hours segment",
			"pharmacy", seed.Name,
			"segment", segment)
	}
	r.SkippedHourSegments += len(skipped)
	for _, h := range hours {
		if err := tx.OpeningHours().Create(ctx, tx.DB(), id, h); err != nil {
			return err
		}
		r.OpeningHours++
	}
	return nil
}

func importUser(ctx context.Context, tx shared.Tx, i int, seed UserSeed, now time.Time, r *ImportReport) error {
	balance, err := seedMoney(fmt.Sprintf("users[%d].cashBalance", i), seed.CashBalance)
	if err != nil {
		return err
	}
	userID, err := tx.Users().Create(ctx, tx.DB(), seed.Name, balance)
	if err != nil {
		return err
	}
	r.Users++

	for j, h := range seed.PurchaseHistories {
		ph, err := tx.Reads().PharmacyByName(ctx, h.PharmacyName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("Skipping purchase history with unknown pharmacy",
					"user", seed.Name,
					"pharmacy", h.PharmacyName)
				r.SkippedTransactions++
				continue
			}
			return err
		}
		mask, err := tx.Reads().MaskByPharmacyAndName(ctx, ph.ID, h.MaskName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("Skipping purchase history with unknown mask",
					"user", seed.Name,
					"pharmacy", h.PharmacyName,
					"mask", h.MaskName)
				r.SkippedTransactions++
				continue
			}
			return err
		}

		amount, err := seedMoney(fmt.Sprintf("users[%d].purchaseHistories[%d].transactionAmount", i, j), h.TransactionAmount)
		if err != nil {
			return err
		}
		date, ok, err := seedDate(h.TransactionDate)
		if err != nil {
			return err
		}
		if !ok {
			date = now
		}

		if _, err := tx.Transactions().Create(ctx, tx.DB(), shared.NewTransaction{
			UserID:     userID,
			PharmacyID: ph.ID,
			MaskID:     mask.ID,
			Date:       date,
			Amount:     amount,
		}); err != nil {
			return err
		}
		r.Transactions++
	}
	return nil
}
