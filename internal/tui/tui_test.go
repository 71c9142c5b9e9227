package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/dashboard"
	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/profile"
	"github.com/movo/dashboard/internal/repository"
	"github.com/movo/dashboard/internal/session"
	"github.com/movo/dashboard/internal/workflow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillForm(f *invoiceForm, values ...string) {
	for i, v := range values {
		f.fields[i].SetValue(v)
	}
}

func TestInvoiceForm_Draft(t *testing.T) {
	f := newInvoiceForm(domain.NewDraft("idr"))
	assert.Equal(t, "IDR", f.fields[formFieldCurrency].Value())

	fillForm(f, "Jane Doe", "jane@example.com", "1,500,000", "idr", "Coffee beans")
	f.addReference()
	f.fields[formBaseFieldCount].SetValue("PO")
	f.fields[formBaseFieldCount+1].SetValue("PO-1")
	f.addReference() // left empty, skipped

	d, err := f.draft()
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.CustomerName)
	assert.True(t, d.Amount.Equal(decimal.NewFromInt(1500000)))
	assert.Equal(t, "IDR", d.Currency)
	assert.Equal(t, []domain.CustomReference{{Label: "PO", Value: "PO-1"}}, d.References)
	assert.NoError(t, d.Validate())
}

func TestInvoiceForm_BadAmount(t *testing.T) {
	f := newInvoiceForm(domain.NewDraft("IDR"))
	fillForm(f, "Jane Doe", "", "lots")

	_, err := f.draft()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidDraft))

	// leaving the tab keeps everything but the amount
	d := f.lenientDraft()
	assert.Equal(t, "Jane Doe", d.CustomerName)
	assert.True(t, d.Amount.IsZero())
}

func TestInvoiceForm_RoundTripsDraft(t *testing.T) {
	in := domain.DraftInvoice{
		CustomerName: "Bob",
		Amount:       decimal.RequireFromString("250000"),
		Currency:     "IDR",
		References:   []domain.CustomReference{{Label: "Table", Value: "7"}},
	}
	f := newInvoiceForm(in)
	assert.Equal(t, 1, f.referenceCount())

	out, err := f.draft()
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestInvoiceForm_References(t *testing.T) {
	f := newInvoiceForm(domain.NewDraft("IDR"))
	for i := 0; i < maxReferences+2; i++ {
		f.addReference()
	}
	assert.Equal(t, maxReferences, f.referenceCount())
	assert.Equal(t, len(f.fields)-2, f.fieldFocus)

	f.focus(len(f.fields) - 1)
	f.removeReference()
	assert.Equal(t, maxReferences-1, f.referenceCount())
	assert.Equal(t, len(f.fields)-1, f.fieldFocus)

	for i := 0; i < maxReferences; i++ {
		f.removeReference()
	}
	assert.Equal(t, 0, f.referenceCount())
	assert.Len(t, f.fields, formBaseFieldCount)
}

func TestInvoiceForm_FocusWraps(t *testing.T) {
	f := newInvoiceForm(domain.NewDraft("IDR"))
	f.prev()
	assert.True(t, f.onLastField())
	f.next()
	assert.Equal(t, formFieldCustomer, f.fieldFocus)
}

func TestFAQ_OneAnswerOpen(t *testing.T) {
	m := NewFAQModel()
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m.Update(enter)
	assert.Equal(t, 0, m.open)

	m.Update(down)
	m.Update(enter)
	assert.Equal(t, 1, m.open)

	m.Update(enter)
	assert.Equal(t, -1, m.open)
}

func TestTabForKey(t *testing.T) {
	two := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")}
	altFive := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5"), Alt: true}

	tab, ok := tabForKey(two, false)
	require.True(t, ok)
	assert.Equal(t, dashboard.TabInvoices, tab)

	_, ok = tabForKey(two, true)
	assert.False(t, ok, "digits belong to the focused form")

	tab, ok = tabForKey(altFive, true)
	require.True(t, ok)
	assert.Equal(t, dashboard.TabFAQ, tab)
}

type stubBackend struct {
	records []domain.InvoiceRecord
}

func (s stubBackend) GetMerchantProfile(ctx context.Context, account domain.Account) (*domain.MerchantProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s stubBackend) FetchInvoices(ctx context.Context, account domain.Account) ([]domain.InvoiceRecord, error) {
	return s.records, nil
}

func usdcRecord() domain.InvoiceRecord {
	usdc := decimal.RequireFromString("6.25")
	return domain.InvoiceRecord{
		ID:               "inv_1",
		InvoiceNo:        "INV-001",
		CustomerName:     "Jane",
		Status:           "pending",
		CreatedAt:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:           decimal.NewFromInt(100000),
		Currency:         "IDR",
		StablecoinAmount: &usdc,
	}
}

func newLoadedInvoicesModel(t *testing.T, records ...domain.InvoiceRecord) *InvoicesModel {
	t.Helper()
	backend := stubBackend{records: records}
	repo := repository.NewInvoiceRepo(backend, nil)
	require.NoError(t, repo.Load(context.Background(), "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))

	ctrl := dashboard.New(
		session.New(nil),
		profile.NewGate(backend, time.Minute, nil),
		repo,
		workflow.NewMachine("IDR", nil),
		nil, nil, nil,
	)
	return NewInvoicesModel(&shared{ctrl: ctrl, spinner: spinner.New()})
}

func TestInvoiceDetail_ShowsEquivalentOnce(t *testing.T) {
	vm := domain.DeriveViewModel(usdcRecord())
	m := &InvoicesModel{selected: &vm}

	out := m.viewDetail()
	assert.Contains(t, out, "6.25 USDC")
	assert.Equal(t, 1, strings.Count(out, "≈"))
}

func TestInvoiceList_ShowsEquivalent(t *testing.T) {
	plain := usdcRecord()
	plain.ID, plain.InvoiceNo, plain.StablecoinAmount = "inv_2", "INV-002", nil

	m := newLoadedInvoicesModel(t, usdcRecord(), plain)
	out := m.viewList()
	assert.Contains(t, out, "INV-001")
	assert.Contains(t, out, "INV-002")
	assert.Contains(t, out, "6.25 USDC")
	assert.Equal(t, 1, strings.Count(out, "≈"))
}
