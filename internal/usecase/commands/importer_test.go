//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/pkg/clock"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pharmacySeedJSON = `[
  {
    "name": "DFW Wellness",
    "cashBalance": 328.41,
    "openingHours": "Mon, Wed, Fri 08:00 - 12:00 / Tue, Thur 14:00 - 18:00",
    "masks": [
      {"name": "True Barrier (green) (3 per pack)", "price": 13.7},
      {"name": "MaskT (green) (10 per pack)", "price": 41.86}
    ]
  },
  {
    "name": "Carepoint",
    "cashBalance": 593.35,
    "openingHours": "Mon - Fri 08:00 - 17:00 / Sat, Sun 08:00 - 12:00",
    "masks": [
      {"name": "Masquerade (green) (3 per pack)", "price": 9.4}
    ]
  }
]`

const userSeedJSON = `[
  {
    "name": "Yvonne Guerrero",
    "cashBalance": 191.83,
    "purchaseHistories": [
      {"pharmacyName": "DFW Wellness", "maskName": "True Barrier (green) (3 per pack)", "transactionAmount": 12.35, "transactionDate": "2021-01-04 15:18:51"},
      {"pharmacyName": "Carepoint", "maskName": "Masquerade (green) (3 per pack)", "transactionAmount": 9.4, "transactionDate": "2021-01-21T08:00:00Z"},
      {"pharmacyName": "Nowhere Drug", "maskName": "Ghost", "transactionAmount": 1.0, "transactionDate": "2021-01-01 00:00:00"},
      {"pharmacyName": "Carepoint", "maskName": "MaskT (green) (10 per pack)", "transactionAmount": 41.86},
      {"pharmacyName": "Carepoint", "maskName": "Masquerade (green) (3 per pack)", "transactionAmount": 3.333}
    ]
  }
]`

func TestImport(t *testing.T) {
	ctx := context.Background()
	importTime := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	pharmacies, err := commands.DecodePharmacySeeds(strings.NewReader(pharmacySeedJSON))
	require.NoError(t, err)
	users, err := commands.DecodeUserSeeds(strings.NewReader(userSeedJSON))
	require.NoError(t, err)

	t.Run("全件取り込み、未知の名前はスキップ", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewImportUseCase(&fakeUoW{store: store}, clock.NewMockClock(importTime))

		report, err := uc.Import(ctx, pharmacies, users)
		require.NoError(t, err)

		assert.Equal(t, &commands.ImportReport{
			Pharmacies:          2,
			Masks:               3,
			OpeningHours:        3 + 7,
			Users:               1,
			Transactions:        3,
			SkippedTransactions: 2,
			SkippedHourSegments: 1,
		}, report)

		require.Len(t, store.transactions, 3)
		assert.Equal(t, time.Date(2021, 1, 4, 15, 18, 51, 0, time.UTC), store.transactions[0].Date)
		assert.Equal(t, "12.35", store.transactions[0].Amount.String())
		assert.Equal(t, time.Date(2021, 1, 21, 8, 0, 0, 0, time.UTC), store.transactions[1].Date)
		assert.Equal(t, importTime, store.transactions[2].Date)
		assert.Equal(t, "3.33", store.transactions[2].Amount.String())

		var carepointDays []pharmacy.Day
		for _, h := range store.hours {
			if store.pharmacies[h.PharmacyID].Name == "Carepoint" {
				carepointDays = append(carepointDays, h.Hour.Day)
			}
		}
		assert.ElementsMatch(t, pharmacy.Week[:], carepointDays)
	})

	t.Run("薬局名の重複で全体が巻き戻る", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewImportUseCase(&fakeUoW{store: store}, clock.NewMockClock(importTime))

		dup := append(pharmacies[:1:1], pharmacies[0])
		_, err := uc.Import(ctx, dup, users)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Empty(t, store.pharmacies)
		assert.Empty(t, store.masks)
		assert.Empty(t, store.users)
	})

	t.Run("不正な日付で失敗する", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewImportUseCase(&fakeUoW{store: store}, clock.NewMockClock(importTime))
		bad, err := commands.DecodeUserSeeds(strings.NewReader(`[{"name": "A", "cashBalance": 1, "purchaseHistories": [
			{"pharmacyName": "Carepoint", "maskName": "Masquerade (green) (3 per pack)", "transactionAmount": 1, "transactionDate": "04/01/2021"}
		]}]`))
		require.NoError(t, err)

		_, err = uc.Import(ctx, pharmacies, bad)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
		assert.Empty(t, store.users)
	})
}

func TestDecodeSeeds(t *testing.T) {
	t.Run("必須項目の欠落", func(t *testing.T) {
		_, err := commands.DecodePharmacySeeds(strings.NewReader(`[{"name": "X", "masks": [{"price": 1}]}]`))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
		assert.Contains(t, err.Error(), "pharmacies[0].masks[0].name failed on required")
	})

	t.Run("JSON の形式不正", func(t *testing.T) {
		_, err := commands.DecodeUserSeeds(strings.NewReader(`{"name": `))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})
}
