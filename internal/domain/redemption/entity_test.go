//go:build unit

package redemption_test

import (
	"strings"
	"testing"

	"lucky-draw/internal/domain/redemption"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(
		redemption.OrderRecord{},
		redemption.DrawResultRecord{},
		redemption.OrderNumber{},
		redemption.DrawResult{},
	),
}

func mustOrderNumber(t *testing.T, s string) redemption.OrderNumber {
	t.Helper()
	o, err := redemption.NewOrderNumber(s)
	require.NoError(t, err)
	return o
}

func mustDrawResult(t *testing.T, s string) redemption.DrawResult {
	t.Helper()
	d, err := redemption.NewDrawResult(s)
	require.NoError(t, err)
	return d
}

func TestNewOrderNumber(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain value OK", input: "A100", want: "A100"},
		{name: "surrounding whitespace trimmed", input: "  A100\t", want: "A100"},
		{name: "max length OK", input: strings.Repeat("9", redemption.MaxOrderNumberLength), want: strings.Repeat("9", redemption.MaxOrderNumberLength)},
		{name: "empty NG", input: "", errIs: redemption.ErrEmptyOrderNumber},
		{name: "whitespace only NG", input: "   ", errIs: redemption.ErrEmptyOrderNumber},
		{name: "too long NG", input: strings.Repeat("9", redemption.MaxOrderNumberLength+1), errIs: redemption.ErrOrderNumberTooLong},
		{name: "slash NG", input: "A/100", errIs: redemption.ErrInvalidOrderNumber},
		{name: "dot segment NG", input: "..", errIs: redemption.ErrInvalidOrderNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := redemption.NewOrderNumber(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNewDrawResult(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "plain value OK", input: "PRIZE1"},
		{name: "value kept verbatim", input: " PRIZE 1 "},
		{name: "max length OK", input: strings.Repeat("x", redemption.MaxDrawResultLength)},
		{name: "empty NG", input: "", errIs: redemption.ErrEmptyDrawResult},
		{name: "blank NG", input: " \n ", errIs: redemption.ErrEmptyDrawResult},
		{name: "too long NG", input: strings.Repeat("x", redemption.MaxDrawResultLength+1), errIs: redemption.ErrDrawResultTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := redemption.NewDrawResult(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, got.String())
		})
	}
}

func TestOrderRecord(t *testing.T) {
	t.Run("new record is unplayed and eligible", func(t *testing.T) {
		order := redemption.NewOrderRecord(mustOrderNumber(t, "A100"))

		assert.False(t, order.HasPlayed())
		assert.Nil(t, order.DrawResult())
		assert.NoError(t, order.CheckEligible())
	})

	t.Run("redeem marks played and returns the result record", func(t *testing.T) {
		orderNumber := mustOrderNumber(t, "A100")
		prize := mustDrawResult(t, "PRIZE1")
		order := redemption.NewOrderRecord(orderNumber)

		record, err := order.Redeem(prize)
		require.NoError(t, err)

		wantOrder := redemption.ReconstructOrderRecord(orderNumber, true, &prize)
		if diff := cmp.Diff(wantOrder, order, cmpOpts...); diff != "" {
			t.Errorf("OrderRecord mismatch (-want +got):\n%s", diff)
		}

		wantRecord := redemption.ReconstructDrawResultRecord(orderNumber, prize, record.Timestamp())
		if diff := cmp.Diff(wantRecord, record, cmpOpts...); diff != "" {
			t.Errorf("DrawResultRecord mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, record.Timestamp().IsZero(), "timestamp is assigned by the store")
	})

	t.Run("second redeem is rejected and leaves the first result", func(t *testing.T) {
		order := redemption.NewOrderRecord(mustOrderNumber(t, "A100"))
		_, err := order.Redeem(mustDrawResult(t, "PRIZE1"))
		require.NoError(t, err)

		record, err := order.Redeem(mustDrawResult(t, "PRIZE2"))
		assert.ErrorIs(t, err, redemption.ErrAlreadyRedeemed)
		assert.Nil(t, record)
		require.NotNil(t, order.DrawResult())
		assert.Equal(t, "PRIZE1", order.DrawResult().String())
	})

	t.Run("reconstructed played record is not eligible", func(t *testing.T) {
		prize := mustDrawResult(t, "PRIZE1")
		order := redemption.ReconstructOrderRecord(mustOrderNumber(t, "A100"), true, &prize)

		assert.ErrorIs(t, order.CheckEligible(), redemption.ErrAlreadyRedeemed)
	})
}
