//go:build unit

package ledger_test

import (
	"encoding/json"
	"testing"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("文字列から生成", func(t *testing.T) {
		m, err := ledger.ParseMoney("12.5")
		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("負の金額はNG", func(t *testing.T) {
		_, err := ledger.ParseMoney("-0.01")
		require.Error(t, err)
		assert.True(t, errs.Is(err, ledger.ErrNegativeAmount))
	})

	t.Run("小数3桁はNG", func(t *testing.T) {
		_, err := ledger.NewMoney(decimal.RequireFromString("1.005"))
		require.Error(t, err)
		assert.True(t, errs.Is(err, ledger.ErrAmountScale))
	})

	t.Run("数値でない文字列はNG", func(t *testing.T) {
		_, err := ledger.ParseMoney("ten")
		require.Error(t, err)
	})

	t.Run("浮動小数の誤差が出ない", func(t *testing.T) {
		sum := ledger.Zero
		for i := 0; i < 10; i++ {
			sum = sum.Add(ledger.MustMoney("0.10"))
		}
		assert.True(t, sum.Equal(ledger.MustMoney("1.00")))
	})

	t.Run("数量倍", func(t *testing.T) {
		assert.Equal(t, "75.00", ledger.MustMoney("25").Times(3).String())
	})

	t.Run("減算で負になる場合はNG", func(t *testing.T) {
		_, err := ledger.MustMoney("5.00").Sub(ledger.MustMoney("5.01"))
		require.Error(t, err)
		assert.True(t, errs.Is(err, ledger.ErrNegativeAmount))

		rest, err := ledger.MustMoney("5.00").Sub(ledger.MustMoney("5.00"))
		require.NoError(t, err)
		assert.True(t, rest.Equal(ledger.Zero))
	})

	t.Run("JSONは文字列で出力し数値も文字列も受け付ける", func(t *testing.T) {
		out, err := json.Marshal(ledger.MustMoney("3"))
		require.NoError(t, err)
		assert.JSONEq(t, `"3.00"`, string(out))

		var fromNumber, fromString ledger.Money
		require.NoError(t, json.Unmarshal([]byte(`12.34`), &fromNumber))
		require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &fromString))
		assert.True(t, fromNumber.Equal(fromString))

		var neg ledger.Money
		assert.Error(t, json.Unmarshal([]byte(`-1`), &neg))
	})
}
