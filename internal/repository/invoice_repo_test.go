package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acctA = domain.Account("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

type mockFetcher struct {
	records []domain.InvoiceRecord
	err     error
	calls   int
}

func (m *mockFetcher) FetchInvoices(ctx context.Context, account domain.Account) ([]domain.InvoiceRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func record(id, status string) domain.InvoiceRecord {
	return domain.InvoiceRecord{
		ID:           id,
		InvoiceNo:    "INV-" + id,
		CustomerName: "Acme",
		Status:       status,
		CreatedAt:    time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(100000),
		Currency:     "IDR",
	}
}

func TestLoad_NoSession(t *testing.T) {
	f := &mockFetcher{}
	r := NewInvoiceRepo(f, nil)

	err := r.Load(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, PhaseNoSession, r.Phase())
	assert.Empty(t, r.Invoices())
	assert.False(t, r.Loading())
	assert.Equal(t, 0, f.calls)
}

func TestLoad_ReplacesListWholesale(t *testing.T) {
	f := &mockFetcher{records: []domain.InvoiceRecord{record("1", "paid"), record("2", "pending")}}
	r := NewInvoiceRepo(f, nil)

	require.NoError(t, r.Load(context.Background(), acctA))
	require.Len(t, r.Invoices(), 2)
	assert.Equal(t, "Paid", r.Invoices()[0].StatusLabel)
	assert.Equal(t, "Mar 05, 2024", r.Invoices()[0].Created)

	f.records = []domain.InvoiceRecord{record("3", "expired")}
	require.NoError(t, r.Load(context.Background(), acctA))
	require.Len(t, r.Invoices(), 1)
	assert.Equal(t, "3", r.Invoices()[0].ID)
	assert.Equal(t, PhaseLoaded, r.Phase())
}

func TestLoad_EmptyIsNotError(t *testing.T) {
	r := NewInvoiceRepo(&mockFetcher{}, nil)

	require.NoError(t, r.Load(context.Background(), acctA))
	assert.True(t, r.Empty())
	assert.NoError(t, r.Err())
}

func TestLoad_FailureIsDistinctFromEmpty(t *testing.T) {
	f := &mockFetcher{err: errors.New("connection refused")}
	r := NewInvoiceRepo(f, nil)

	err := r.Load(context.Background(), acctA)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvoiceListFetchFailed))
	assert.Equal(t, PhaseFailed, r.Phase())
	assert.False(t, r.Empty())
	assert.False(t, r.Loading())

	// retry after recovery
	f.err = nil
	f.records = []domain.InvoiceRecord{record("1", "paid")}
	require.NoError(t, r.Load(context.Background(), acctA))
	assert.Len(t, r.Invoices(), 1)
	assert.Equal(t, 2, f.calls)
}

func TestLoad_DropsInvalidRecords(t *testing.T) {
	bad := record("", "paid")
	f := &mockFetcher{records: []domain.InvoiceRecord{record("1", "paid"), bad, record("2", "weird")}}
	r := NewInvoiceRepo(f, nil)

	require.NoError(t, r.Load(context.Background(), acctA))
	require.Len(t, r.Invoices(), 2)
	assert.Equal(t, 1, r.Rejected())
	assert.Equal(t, "weird", r.Invoices()[1].StatusLabel)
}

func TestApply_OnlyLatestSettles(t *testing.T) {
	f := &mockFetcher{records: []domain.InvoiceRecord{record("1", "paid")}}
	r := NewInvoiceRepo(f, nil)

	first, ok := r.Begin(acctA)
	require.True(t, ok)
	second, ok := r.Begin(acctA)
	require.True(t, ok)
	assert.True(t, r.Loading())

	firstRes := r.Fetch(context.Background(), first)
	assert.False(t, r.Apply(firstRes))
	assert.True(t, r.Loading(), "superseded response must not clear the flag")

	secondRes := r.Fetch(context.Background(), second)
	assert.True(t, r.Apply(secondRes))
	assert.False(t, r.Loading())

	// settling twice is a no-op
	assert.False(t, r.Apply(secondRes))
}

func TestReset_DropsInFlight(t *testing.T) {
	f := &mockFetcher{records: []domain.InvoiceRecord{record("1", "paid")}}
	r := NewInvoiceRepo(f, nil)

	req, _ := r.Begin(acctA)
	r.Reset()
	assert.False(t, r.Apply(r.Fetch(context.Background(), req)))
	assert.Empty(t, r.Invoices())
	assert.Equal(t, PhaseIdle, r.Phase())
	assert.False(t, r.Loading())
}

func TestRecent(t *testing.T) {
	f := &mockFetcher{records: []domain.InvoiceRecord{record("1", "paid"), record("2", "paid"), record("3", "paid")}}
	r := NewInvoiceRepo(f, nil)
	require.NoError(t, r.Load(context.Background(), acctA))

	assert.Len(t, r.Recent(2), 2)
	assert.Len(t, r.Recent(10), 3)
	assert.Equal(t, "1", r.Recent(1)[0].ID)
}
