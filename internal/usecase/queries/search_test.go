//go:build unit

package queries_test

import (
	"context"
	"testing"

	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchQueries_Search(t *testing.T) {
	ctx := context.Background()
	masks := []*queries.MaskView{maskView(1, "Second Smile (black) (10 per pack)", "7.00")}
	pharmacies := []*queries.PharmacyView{{ID: 4, Name: "Second Health"}}

	t.Run("カテゴリ省略で両方", func(t *testing.T) {
		ps, ms := new(MockPharmacyReadStore), new(MockMaskReadStore)
		ps.On("SearchByName", ctx, "second").Return(pharmacies, nil)
		ms.On("SearchByName", ctx, "second").Return(masks, nil)

		got, err := queries.NewSearchQueries(ps, ms).Search(ctx, " second ", "")
		require.NoError(t, err)
		assert.Equal(t, masks, got.Masks)
		assert.Equal(t, pharmacies, got.Pharmacies)
	})

	t.Run("masks のみ", func(t *testing.T) {
		ps, ms := new(MockPharmacyReadStore), new(MockMaskReadStore)
		ms.On("SearchByName", ctx, "second").Return(masks, nil)

		got, err := queries.NewSearchQueries(ps, ms).Search(ctx, "second", "masks")
		require.NoError(t, err)
		assert.Equal(t, masks, got.Masks)
		assert.Nil(t, got.Pharmacies)
		ps.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	})

	t.Run("ワイルドカードはエスケープされる", func(t *testing.T) {
		ps, ms := new(MockPharmacyReadStore), new(MockMaskReadStore)
		ps.On("SearchByName", ctx, `50\%`).Return([]*queries.PharmacyView{}, nil)

		got, err := queries.NewSearchQueries(ps, ms).Search(ctx, "50%", "pharmacies")
		require.NoError(t, err)
		assert.Empty(t, got.Pharmacies)
		ps.AssertExpectations(t)
	})

	t.Run("空のクエリ", func(t *testing.T) {
		_, err := queries.NewSearchQueries(new(MockPharmacyReadStore), new(MockMaskReadStore)).Search(ctx, "  ", "")
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("不明なカテゴリ", func(t *testing.T) {
		_, err := queries.NewSearchQueries(new(MockPharmacyReadStore), new(MockMaskReadStore)).Search(ctx, "a", "users")
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})
}
