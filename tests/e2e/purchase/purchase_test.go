//go:build e2e

package purchase_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"mask-ledger/internal/handler/dto/response"
	"mask-ledger/tests/common/dbtest"
	"mask-ledger/tests/common/httptest"
	"mask-ledger/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const purchaseURL = "/purchase/"

type PurchaseSuite struct {
	e2e.SharedSuite
}

func (s *PurchaseSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseSuite))
}

type item struct {
	PharmacyID int64 `json:"pharmacy_id"`
	MaskID     int64 `json:"mask_id"`
	Quantity   int64 `json:"quantity"`
}

type purchaseRequest struct {
	UserID    int64  `json:"user_id"`
	Purchases []item `json:"purchases"`
}

// =============================================================================
// TestPurchase - multi-pharmacy purchase API tests
// =============================================================================

func (s *PurchaseSuite) TestPurchase() {
	s.Run("正常系: 複数薬局からの購入で残高が移動し取引が記録される", func() {
		t := s.T()
		l := dbtest.SeedLedger(t, s.DB)

		req := purchaseRequest{
			UserID: l.Alice,
			Purchases: []item{
				{PharmacyID: l.DFW, MaskID: l.TrueBarrier, Quantity: 2},
				{PharmacyID: l.Carepoint, MaskID: l.SecondSmile, Quantity: 3},
			},
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req)

		var body []response.TransactionResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)

		want := []response.TransactionResponse{
			{UserID: l.Alice, PharmacyID: l.DFW, MaskID: l.TrueBarrier, TransactionAmount: "27.40"},
			{UserID: l.Alice, PharmacyID: l.Carepoint, MaskID: l.SecondSmile, TransactionAmount: "20.88"},
		}
		opts := cmpopts.IgnoreFields(response.TransactionResponse{}, "ID", "TransactionDate")
		if diff := cmp.Diff(want, body, opts); diff != "" {
			t.Errorf("transactions mismatch (-want +got):\n%s", diff)
		}
		require.NotEqual(t, body[0].ID, body[1].ID)
		require.Equal(t, body[0].TransactionDate, body[1].TransactionDate)

		require.Equal(t, "51.72", dbtest.BalanceOf(t, s.DB, "users", l.Alice))
		require.Equal(t, "327.40", dbtest.BalanceOf(t, s.DB, "pharmacies", l.DFW))
		require.Equal(t, "520.88", dbtest.BalanceOf(t, s.DB, "pharmacies", l.Carepoint))
		require.Equal(t, 5, dbtest.CountRows(t, s.DB, "transactions"))
	})

	s.Run("異常系: 残高不足なら400で何も変わらない", func() {
		t := s.T()
		l := dbtest.SeedLedger(t, s.DB)

		req := purchaseRequest{
			UserID:    l.Bob,
			Purchases: []item{{PharmacyID: l.DFW, MaskID: l.MaskT, Quantity: 2}},
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req)

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Insufficient funds")
		var detail response.InsufficientFundsDetail
		httptest.DecodeErrorDetail(t, rec, &detail)
		require.Equal(t, "83.72", detail.Required)
		require.Equal(t, "50.00", detail.Available)

		require.Equal(t, "50.00", dbtest.BalanceOf(t, s.DB, "users", l.Bob))
		require.Equal(t, "300.00", dbtest.BalanceOf(t, s.DB, "pharmacies", l.DFW))
		require.Equal(t, 3, dbtest.CountRows(t, s.DB, "transactions"))
	})

	s.Run("異常系: 2件目が不正なら1件目も記録されない", func() {
		t := s.T()
		l := dbtest.SeedLedger(t, s.DB)

		req := purchaseRequest{
			UserID: l.Alice,
			Purchases: []item{
				{PharmacyID: l.DFW, MaskID: l.TrueBarrier, Quantity: 1},
				{PharmacyID: l.DFW, MaskID: l.SecondSmile, Quantity: 1},
			},
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req)

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "not found in pharmacy")
		require.Equal(t, "100.00", dbtest.BalanceOf(t, s.DB, "users", l.Alice))
		require.Equal(t, 3, dbtest.CountRows(t, s.DB, "transactions"))
	})

	s.Run("異常系: リクエストの検証エラーは400", func() {
		t := s.T()
		l := dbtest.SeedLedger(t, s.DB)

		testCases := []struct {
			name        string
			req         purchaseRequest
			expectedMsg string
		}{
			{
				name:        "unknown user",
				req:         purchaseRequest{UserID: 9999, Purchases: []item{{PharmacyID: l.DFW, MaskID: l.TrueBarrier, Quantity: 1}}},
				expectedMsg: "user 9999 not found",
			},
			{
				name:        "no items",
				req:         purchaseRequest{UserID: l.Alice, Purchases: []item{}},
				expectedMsg: "purchases must contain at least one item",
			},
			{
				name:        "zero quantity",
				req:         purchaseRequest{UserID: l.Alice, Purchases: []item{{PharmacyID: l.DFW, MaskID: l.TrueBarrier, Quantity: 0}}},
				expectedMsg: "purchases[0].quantity must be a positive integer",
			},
			{
				name:        "unknown mask",
				req:         purchaseRequest{UserID: l.Alice, Purchases: []item{{PharmacyID: l.DFW, MaskID: 9999, Quantity: 1}}},
				expectedMsg: "mask 9999 not found in pharmacy",
			},
		}

		for _, tc := range testCases {
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, tc.req)
			httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, tc.expectedMsg)
		}
		require.Equal(t, "100.00", dbtest.BalanceOf(t, s.DB, "users", l.Alice))
	})

	s.Run("正常系: 残高ちょうどの購入は成功し残高0になる", func() {
		t := s.T()
		l := dbtest.SeedLedger(t, s.DB)
		carol := dbtest.CreateUser(t, s.DB, "Carol", "13.92")

		req := purchaseRequest{
			UserID:    carol,
			Purchases: []item{{PharmacyID: l.Carepoint, MaskID: l.SecondSmile, Quantity: 2}},
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req)

		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
		require.Equal(t, "0.00", dbtest.BalanceOf(t, s.DB, "users", carol))
	})

	s.Run("正常系: 同一ユーザーの同時購入でも残高を超えて支払わない", func() {
		t := s.T()
		l := dbtest.SeedLedger(t, s.DB)

		payload, err := json.Marshal(purchaseRequest{
			UserID:    l.Alice,
			Purchases: []item{{PharmacyID: l.DFW, MaskID: l.MaskT, Quantity: 1}},
		})
		require.NoError(t, err)

		const workers = 5
		statuses := make([]int, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := httptest.PerformRawRequest(t, s.Router, http.MethodPost, purchaseURL, string(payload))
				statuses[i] = rec.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				succeeded++
			case http.StatusBadRequest, http.StatusConflict:
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.GreaterOrEqual(t, succeeded, 1)
		require.LessOrEqual(t, succeeded, 2)

		spent := decimal.RequireFromString("41.86").Mul(decimal.NewFromInt(int64(succeeded)))
		wantBalance := decimal.RequireFromString("100.00").Sub(spent).StringFixed(2)
		require.Equal(t, wantBalance, dbtest.BalanceOf(t, s.DB, "users", l.Alice))
		require.Equal(t, 3+succeeded, dbtest.CountRows(t, s.DB, "transactions"))
	})
}
