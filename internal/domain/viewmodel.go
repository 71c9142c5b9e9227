package domain

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DateLayout is the fixed en-US date format used for invoice timestamps.
const DateLayout = "Jan 02, 2006"

// InvoiceViewModel is the display projection of one InvoiceRecord.
type InvoiceViewModel struct {
	ID          string
	InvoiceNo   string
	Customer    string
	Email       string
	Status      InvoiceStatus
	StatusLabel string
	Created     string
	Expires     string
	Amount      decimal.Decimal
	Currency    string
	AmountText  string
	Equivalent  string // empty when the backend sent no stablecoin amount
}

// HasEquivalent reports whether a stablecoin equivalent is available
func (v InvoiceViewModel) HasEquivalent() bool {
	return v.Equivalent != ""
}

// DeriveViewModel projects a record into its view model. It depends on nothing but the record.
func DeriveViewModel(r InvoiceRecord) InvoiceViewModel {
	status := MapInvoiceStatus(r.Status)
	vm := InvoiceViewModel{
		ID:          r.ID,
		InvoiceNo:   r.InvoiceNo,
		Customer:    r.CustomerName,
		Email:       r.CustomerEmail,
		Status:      status,
		StatusLabel: statusLabel(status, r.Status),
		Created:     FormatDate(r.CreatedAt),
		Expires:     "-",
		Amount:      r.Amount,
		Currency:    r.Currency,
		AmountText:  FormatAmount(r.Amount, r.Currency),
	}
	if r.ExpiresAt != nil {
		vm.Expires = FormatDate(*r.ExpiresAt)
	}
	if r.StablecoinAmount != nil {
		vm.Equivalent = FormatStablecoin(*r.StablecoinAmount)
	}
	return vm
}

// statusLabel shows the backend's own code for statuses outside the mapping
func statusLabel(status InvoiceStatus, code string) string {
	if status != InvoiceStatusUnknown {
		return status.Label()
	}
	if code = strings.TrimSpace(code); code != "" {
		return code
	}
	return "-"
}

// DeriveViewModels maps records in order
func DeriveViewModels(records []InvoiceRecord) []InvoiceViewModel {
	return lo.Map(records, func(r InvoiceRecord, _ int) InvoiceViewModel {
		return DeriveViewModel(r)
	})
}

// FormatDate renders t in UTC using DateLayout
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(DateLayout)
}
