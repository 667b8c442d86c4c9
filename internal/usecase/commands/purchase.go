package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands_mock.go -package=commandsmock mask-ledger/internal/usecase/commands ImportCommands,PurchaseCommands

import (
	"context"
	"log/slog"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/pkg/clock"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/pkg/metrics"
	"mask-ledger/internal/usecase/shared"
)

type PurchaseRequest struct {
	UserID int64
	Items  []ledger.PurchaseItem
}

type PurchaseResult struct {
	Transactions []*shared.TransactionSnapshot
	Total        ledger.Money
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseUseCase(uow shared.UnitOfWork, clk clock.Clock) PurchaseCommands {
	return &purchaseUseCaseImpl{uow: uow, clock: clk}
}

// Purchase debits the user, credits every pharmacy involved and records one
// transaction per item, all in one unit of work. Any failure leaves every
// balance untouched.
func (uc *purchaseUseCaseImpl) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	var result *PurchaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.purchase(ctx, tx, req)
		if err != nil {
			return err
		}
		result = res
		return nil
	})

	metrics.PurchasesTotal.WithLabelValues(purchaseOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	metrics.PurchaseAmountTotal.Add(result.Total.Decimal().InexactFloat64())
	slog.Info("Purchase completed",
		"user_id", req.UserID,
		"items", len(result.Transactions),
		"total", result.Total.String())
	return result, nil
}

func (uc *purchaseUseCaseImpl) purchase(ctx context.Context, tx shared.Tx, req PurchaseRequest) (*PurchaseResult, error) {
	user, err := tx.Users().LockByID(ctx, tx.DB(), req.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("user %d not found", req.UserID)
		}
		return nil, err
	}

	lines, err := ledger.ValidateItems(req.Items)
	if err != nil {
		return nil, err
	}

	prices := make([]ledger.Money, len(lines))
	for i, line := range lines {
		mask, err := tx.Reads().MaskByID(ctx, line.MaskID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		if mask == nil || mask.PharmacyID != line.PharmacyID {
			return nil, errs.NotFound("mask %d not found in pharmacy %d", line.MaskID, line.PharmacyID)
		}
		prices[i] = mask.Price
	}

	plan, err := ledger.NewPlan(lines, prices)
	if err != nil {
		return nil, err
	}
	if err := plan.CheckFunds(user.Balance); err != nil {
		return nil, errs.Mark(err, errs.ErrInsufficientFunds)
	}

	pharmacyIDs := plan.PharmacyIDs()
	if _, err := tx.Pharmacies().LockByIDs(ctx, tx.DB(), pharmacyIDs); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("pharmacy not found")
		}
		return nil, err
	}

	if err := tx.Users().Debit(ctx, tx.DB(), user.ID, plan.Total); err != nil {
		return nil, err
	}
	for _, id := range pharmacyIDs {
		if err := tx.Pharmacies().Credit(ctx, tx.DB(), id, plan.CreditFor(id)); err != nil {
			return nil, err
		}
	}

	now := uc.clock.Now()
	created := make([]*shared.TransactionSnapshot, 0, len(plan.Lines))
	for _, line := range plan.Lines {
		t, err := tx.Transactions().Create(ctx, tx.DB(), shared.NewTransaction{
			UserID:     user.ID,
			PharmacyID: line.PharmacyID,
			MaskID:     line.MaskID,
			Date:       now,
			Amount:     line.Cost,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, t)
	}

	return &PurchaseResult{Transactions: created, Total: plan.Total}, nil
}

func purchaseOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errs.Is(err, errs.ErrInvalidRequest):
		return metrics.ResultInvalidRequest
	case errs.Is(err, errs.ErrNotFound):
		return metrics.ResultNotFound
	case errs.Is(err, errs.ErrInsufficientFunds):
		return metrics.ResultInsufficientFunds
	case errs.Is(err, errs.ErrConflict):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}
