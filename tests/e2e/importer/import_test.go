//go:build e2e

package importer_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"mask-ledger/internal/handler/dto/response"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/usecase/commands"
	"mask-ledger/tests/common/dbtest"
	"mask-ledger/tests/common/httptest"
	"mask-ledger/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const pharmacyDoc = `[
  {
    "name": "DFW Wellness",
    "cashBalance": 328.41,
    "openingHours": "Mon, Wed, Fri 08:00 - 12:00 / Tue, Thu 14:00 - 18:00",
    "masks": [
      {"name": "True Barrier (green) (3 per pack)", "price": 13.7},
      {"name": "MaskT (green) (10 per pack)", "price": 41.86}
    ]
  },
  {
    "name": "Carepoint",
    "cashBalance": 593.35,
    "openingHours": "Sat - Mon 20:00 - 02:00 / Funday 09:00 - 10:00",
    "masks": [
      {"name": "Second Smile (black) (3 per pack)", "price": 6.96}
    ]
  }
]`

const userDoc = `[
  {
    "name": "Yvonne Guerrero",
    "cashBalance": 191.83,
    "purchaseHistories": [
      {"pharmacyName": "DFW Wellness", "maskName": "True Barrier (green) (3 per pack)", "transactionAmount": 12.35, "transactionDate": "2021-01-04 15:18:51"},
      {"pharmacyName": "Carepoint", "maskName": "Second Smile (black) (3 per pack)", "transactionAmount": 20.884, "transactionDate": "2021-01-08 07:51:22"},
      {"pharmacyName": "Nowhere Pharmacy", "maskName": "Ghost Mask", "transactionAmount": 1, "transactionDate": "2021-01-09 10:00:00"}
    ]
  }
]`

type ImportSuite struct {
	e2e.SharedSuite
}

func (s *ImportSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestImportSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ImportSuite))
}

func decodeDocs(t *testing.T) ([]commands.PharmacySeed, []commands.UserSeed) {
	t.Helper()

	pharmacies, err := commands.DecodePharmacySeeds(strings.NewReader(pharmacyDoc))
	require.NoError(t, err)
	users, err := commands.DecodeUserSeeds(strings.NewReader(userDoc))
	require.NoError(t, err)
	return pharmacies, users
}

// =============================================================================
// TestImport - seed documents loaded through the importer
// =============================================================================

func (s *ImportSuite) TestImport() {
	s.Run("正常系: シードを取り込みAPIから参照できる", func() {
		t := s.T()
		pharmacies, users := decodeDocs(t)

		report, err := s.Importer.Import(context.Background(), pharmacies, users)
		require.NoError(t, err)
		require.Equal(t, &commands.ImportReport{
			Pharmacies:          2,
			Masks:               3,
			OpeningHours:        8,
			Users:               1,
			Transactions:        2,
			SkippedTransactions: 1,
			SkippedHourSegments: 1,
		}, report)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/pharmacies/open/?day=Thu&time=15:00", nil)
		var open []response.PharmacyResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &open)
		require.Len(t, open, 1)
		require.Equal(t, "DFW Wellness", open[0].Name)
		require.Equal(t, "328.41", open[0].CashBalance)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/transactions/summary/?start_date=2021-01-01&end_date=2021-01-31", nil)
		var summary response.TransactionSummaryResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &summary)
		require.Equal(t, int64(2), summary.Count)
		require.Equal(t, "33.23", summary.Total)
	})

	s.Run("異常系: 薬局名の重複で全体がロールバックされる", func() {
		t := s.T()
		pharmacies, users := decodeDocs(t)
		pharmacies = append(pharmacies, pharmacies[0])

		_, err := s.Importer.Import(context.Background(), pharmacies, users)
		require.Error(t, err)
		require.False(t, errs.Is(err, errs.ErrConflict))

		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "pharmacies"))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "users"))
	})
}
