package domain

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() InvoiceRecord {
	expires := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	usdc := decimal.RequireFromString("6.25")
	return InvoiceRecord{
		ID:               "inv_1",
		InvoiceNo:        "INV-0001",
		CustomerName:     "Jane",
		CustomerEmail:    "jane@example.com",
		Status:           "paid",
		CreatedAt:        time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC),
		ExpiresAt:        &expires,
		Amount:           decimal.NewFromInt(100000),
		Currency:         "IDR",
		StablecoinAmount: &usdc,
	}
}

func TestDeriveViewModel(t *testing.T) {
	vm := DeriveViewModel(sampleRecord())

	assert.Equal(t, "inv_1", vm.ID)
	assert.Equal(t, "INV-0001", vm.InvoiceNo)
	assert.Equal(t, "Jane", vm.Customer)
	assert.Equal(t, InvoiceStatusPaid, vm.Status)
	assert.Equal(t, "Paid", vm.StatusLabel)
	assert.Equal(t, "Mar 02, 2026", vm.Created)
	assert.Equal(t, "Mar 09, 2026", vm.Expires)
	assert.Equal(t, "IDR 100,000", vm.AmountText)
	assert.Equal(t, "≈ 6.25 USDC", vm.Equivalent)
	assert.True(t, vm.HasEquivalent())
}

func TestDeriveViewModel_Idempotent(t *testing.T) {
	r := sampleRecord()
	assert.Equal(t, DeriveViewModel(r), DeriveViewModel(r))

	r.ExpiresAt = nil
	r.StablecoinAmount = nil
	first := DeriveViewModel(r)
	assert.Equal(t, first, DeriveViewModel(r))
	assert.Equal(t, "-", first.Expires)
	assert.False(t, first.HasEquivalent())
}

func TestDeriveViewModel_UsesUTC(t *testing.T) {
	r := sampleRecord()
	jakarta := time.FixedZone("WIB", 7*60*60)
	r.CreatedAt = time.Date(2026, 3, 3, 5, 0, 0, 0, jakarta) // Mar 02 22:00 UTC
	assert.Equal(t, "Mar 02, 2026", DeriveViewModel(r).Created)
}

func TestMapInvoiceStatus(t *testing.T) {
	tests := []struct {
		code  string
		want  InvoiceStatus
		label string
	}{
		{"pending", InvoiceStatusPending, "Pending"},
		{"paid", InvoiceStatusPaid, "Paid"},
		{"expired", InvoiceStatusExpired, "Expired"},
		{"cancelled", InvoiceStatusCancelled, "Cancelled"},
		{" PAID ", InvoiceStatusPaid, "Paid"},
		{"refunded", InvoiceStatusUnknown, "Unknown"},
		{"", InvoiceStatusUnknown, "Unknown"},
		{"unknown", InvoiceStatusUnknown, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := MapInvoiceStatus(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}
}

func TestDeriveViewModel_UnmappedStatusShowsBackendCode(t *testing.T) {
	tests := []struct {
		code  string
		label string
	}{
		{"refunded", "refunded"},
		{" partially_paid ", "partially_paid"},
		{"", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			r := sampleRecord()
			r.Status = tt.code
			vm := DeriveViewModel(r)
			assert.Equal(t, InvoiceStatusUnknown, vm.Status)
			assert.Equal(t, tt.label, vm.StatusLabel)
		})
	}
}

func TestDeriveViewModels_PreservesOrder(t *testing.T) {
	a := sampleRecord()
	b := sampleRecord()
	b.ID = "inv_2"
	b.Status = "pending"

	vms := DeriveViewModels([]InvoiceRecord{a, b})
	require.Len(t, vms, 2)
	assert.Equal(t, "inv_1", vms[0].ID)
	assert.Equal(t, "inv_2", vms[1].ID)
	assert.Empty(t, DeriveViewModels(nil))
}

func TestInvoiceRecordValidate(t *testing.T) {
	ok := sampleRecord()
	require.NoError(t, ok.Validate())

	missingID := sampleRecord()
	missingID.ID = " "
	assert.True(t, errors.Is(missingID.Validate(), ErrInvalidRecord))

	missingNumber := sampleRecord()
	missingNumber.InvoiceNo = ""
	assert.True(t, errors.Is(missingNumber.Validate(), ErrInvalidRecord))

	noCreated := sampleRecord()
	noCreated.CreatedAt = time.Time{}
	assert.True(t, errors.Is(noCreated.Validate(), ErrInvalidRecord))

	negative := sampleRecord()
	negative.Amount = decimal.NewFromInt(-1)
	assert.True(t, errors.Is(negative.Validate(), ErrInvalidRecord))
}
