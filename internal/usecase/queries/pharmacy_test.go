//go:build unit

package queries_test

import (
	"context"
	"testing"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func maskView(id int64, name, price string) *queries.MaskView {
	return &queries.MaskView{ID: id, PharmacyID: 1, Name: name, Price: ledger.MustMoney(price)}
}

func maskIDs(masks []*queries.MaskView) []int64 {
	ids := make([]int64, len(masks))
	for i, m := range masks {
		ids[i] = m.ID
	}
	return ids
}

func TestPharmacyQueries_OpenAt(t *testing.T) {
	ctx := context.Background()
	all := []*queries.PharmacyView{{ID: 1, Name: "DFW Wellness"}, {ID: 2, Name: "Carepoint"}}

	t.Run("曜日と時刻が両方なければ全件", func(t *testing.T) {
		store := new(MockPharmacyReadStore)
		store.On("List", ctx).Return(all, nil)

		got, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).OpenAt(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
		store.AssertNotCalled(t, "ListOpenAt", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("曜日は大文字小文字を区別しない", func(t *testing.T) {
		store := new(MockPharmacyReadStore)
		at := pharmacy.ClockTime{Hour: 15}
		store.On("ListOpenAt", ctx, pharmacy.Tuesday, at).Return(all[:1], nil)

		got, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).OpenAt(ctx, "tue", "15:00")
		require.NoError(t, err)
		assert.Equal(t, all[:1], got)
		store.AssertExpectations(t)
	})

	testCases := []struct {
		name string
		day  string
		at   string
	}{
		{name: "曜日のみ", day: "Mon", at: ""},
		{name: "時刻のみ", day: "", at: "10:00"},
		{name: "不明な曜日", day: "Funday", at: "10:00"},
		{name: "時刻の形式不正", day: "Mon", at: "10am"},
		{name: "範囲外の時刻", day: "Mon", at: "24:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockPharmacyReadStore)
			_, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).OpenAt(ctx, tc.day, tc.at)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
			store.AssertNotCalled(t, "ListOpenAt", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPharmacyQueries_Masks(t *testing.T) {
	ctx := context.Background()
	masks := func() []*queries.MaskView {
		return []*queries.MaskView{
			maskView(1, "True Barrier (green) (3 per pack)", "13.70"),
			maskView(2, "MaskT (black) (10 per pack)", "41.86"),
			maskView(3, "AniMask (blue) (6 per pack)", "13.70"),
			maskView(4, "Masquerade (blue) (6 per pack)", "16.75"),
		}
	}

	testCases := []struct {
		sortBy string
		want   []int64
	}{
		{sortBy: "", want: []int64{1, 2, 3, 4}},
		{sortBy: "name", want: []int64{3, 2, 4, 1}},
		{sortBy: "-name", want: []int64{1, 4, 2, 3}},
		{sortBy: "price", want: []int64{1, 3, 4, 2}},
		{sortBy: "-price", want: []int64{2, 4, 1, 3}},
	}
	for _, tc := range testCases {
		t.Run("sort_by="+tc.sortBy, func(t *testing.T) {
			pharmacies := new(MockPharmacyReadStore)
			pharmacies.On("FindByID", ctx, int64(1)).Return(&queries.PharmacyView{ID: 1}, nil)
			maskStore := new(MockMaskReadStore)
			maskStore.On("ListByPharmacy", ctx, int64(1)).Return(masks(), nil)

			got, err := queries.NewPharmacyQueries(pharmacies, maskStore).Masks(ctx, 1, tc.sortBy)
			require.NoError(t, err)
			assert.Equal(t, tc.want, maskIDs(got))
		})
	}

	t.Run("不明なソートキー", func(t *testing.T) {
		pharmacies := new(MockPharmacyReadStore)
		_, err := queries.NewPharmacyQueries(pharmacies, new(MockMaskReadStore)).Masks(ctx, 1, "stock")
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
		pharmacies.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("存在しない薬局", func(t *testing.T) {
		pharmacies := new(MockPharmacyReadStore)
		pharmacies.On("FindByID", ctx, int64(99)).
			Return(nil, infra.WrapRepoErr("pharmacy not found", nil, infra.KindNotFound))

		_, err := queries.NewPharmacyQueries(pharmacies, new(MockMaskReadStore)).Masks(ctx, 99, "")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestPharmacyQueries_FilterByMaskCount(t *testing.T) {
	ctx := context.Background()
	rows := func() []*queries.PharmacyMaskCountView {
		return []*queries.PharmacyMaskCountView{
			{PharmacyView: queries.PharmacyView{ID: 1, Name: "cheap"}, MaskCount: 3},
			{PharmacyView: queries.PharmacyView{ID: 2, Name: "wide"}, MaskCount: 5},
		}
	}

	t.Run("gt 3 で5件の薬局のみ", func(t *testing.T) {
		store := new(MockPharmacyReadStore)
		maxPrice := ledger.MustMoney("30")
		store.On("CountMasksInPriceRange", ctx, ledger.MustMoney("0"), &maxPrice).Return(rows(), nil)

		got, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).FilterByMaskCount(ctx, queries.MaskCountFilter{
			MinPrice: "0", MaxPrice: "30", Compare: "gt", Count: "3",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(5), got[0].MaskCount)
	})

	t.Run("compare 省略で全件", func(t *testing.T) {
		store := new(MockPharmacyReadStore)
		store.On("CountMasksInPriceRange", ctx, ledger.Zero, (*ledger.Money)(nil)).Return(rows(), nil)

		got, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).FilterByMaskCount(ctx, queries.MaskCountFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("小数第3位以下の価格は範囲の内側に丸める", func(t *testing.T) {
		store := new(MockPharmacyReadStore)
		atLeast := mock.MatchedBy(func(m ledger.Money) bool { return m.Equal(ledger.MustMoney("10.00")) })
		atMost := mock.MatchedBy(func(m *ledger.Money) bool { return m != nil && m.Equal(ledger.MustMoney("20.00")) })
		store.On("CountMasksInPriceRange", ctx, atLeast, atMost).Return(rows(), nil)

		got, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).FilterByMaskCount(ctx, queries.MaskCountFilter{
			MinPrice: "9.999", MaxPrice: "20.005",
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		store.AssertExpectations(t)
	})

	t.Run("丸めると空になる範囲はエラーにしない", func(t *testing.T) {
		store := new(MockPharmacyReadStore)
		store.On("CountMasksInPriceRange", ctx, mock.Anything, mock.Anything).Return(rows(), nil)

		_, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).FilterByMaskCount(ctx, queries.MaskCountFilter{
			MinPrice: "9.991", MaxPrice: "9.999",
		})
		require.NoError(t, err)
	})

	invalid := []struct {
		name string
		f    queries.MaskCountFilter
	}{
		{name: "min が数値でない", f: queries.MaskCountFilter{MinPrice: "abc"}},
		{name: "負の価格", f: queries.MaskCountFilter{MaxPrice: "-1"}},
		{name: "min > max", f: queries.MaskCountFilter{MinPrice: "30", MaxPrice: "10"}},
		{name: "不明な比較演算子", f: queries.MaskCountFilter{Compare: "eq", Count: "1"}},
		{name: "count なしの compare", f: queries.MaskCountFilter{Compare: "gt"}},
		{name: "負の count", f: queries.MaskCountFilter{Compare: "gt", Count: "-1"}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockPharmacyReadStore)
			_, err := queries.NewPharmacyQueries(store, new(MockMaskReadStore)).FilterByMaskCount(ctx, tc.f)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
			store.AssertNotCalled(t, "CountMasksInPriceRange", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
