package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftValidate(t *testing.T) {
	valid := DraftInvoice{
		CustomerName: "Jane",
		Amount:       decimal.NewFromInt(100),
		Currency:     "IDR",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(d *DraftInvoice)
		msg    string
	}{
		{"missing customer", func(d *DraftInvoice) { d.CustomerName = "" }, "customer name is required"},
		{"bad email", func(d *DraftInvoice) { d.CustomerEmail = "jane@" }, "customer email must be a valid email address"},
		{"zero amount", func(d *DraftInvoice) { d.Amount = decimal.Zero }, "amount must be greater than zero"},
		{"lower currency", func(d *DraftInvoice) { d.Currency = "idr" }, "currency must be upper case"},
		{"short currency", func(d *DraftInvoice) { d.Currency = "ID" }, "currency must be 3 characters"},
		{"empty reference", func(d *DraftInvoice) {
			d.References = []CustomReference{{Label: "PO", Value: ""}}
		}, "value is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid.Clone()
			tt.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDraft))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDraftClone_DoesNotShareReferences(t *testing.T) {
	d := DraftInvoice{
		CustomerName: "Jane",
		Amount:       decimal.NewFromInt(100),
		Currency:     "IDR",
		References:   []CustomReference{{Label: "PO", Value: "42"}},
	}
	c := d.Clone()
	c.References[0].Value = "43"

	assert.Equal(t, "42", d.References[0].Value)
	assert.False(t, d.Equal(c))
	assert.True(t, d.Equal(d.Clone()))
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("1,500,000")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(1500000)))

	_, err = ParseAmount("")
	assert.True(t, errors.Is(err, ErrInvalidDraft))

	_, err = ParseAmount("abc")
	assert.True(t, errors.Is(err, ErrInvalidDraft))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "IDR 1,500,000", FormatAmount(decimal.NewFromInt(1500000), "IDR"))
	assert.Equal(t, "USD 1,234.50", FormatAmount(decimal.RequireFromString("1234.5"), "usd"))
	assert.Equal(t, "USD -12.00", FormatAmount(decimal.NewFromInt(-12), "USD"))
	assert.Equal(t, "999.00", FormatAmount(decimal.NewFromInt(999), ""))
}
