package domain

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusExpired   InvoiceStatus = "expired"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusUnknown   InvoiceStatus = "unknown"
)

// statusLabels is the fixed backend code to display label table.
var statusLabels = map[InvoiceStatus]string{
	InvoiceStatusPending:   "Pending",
	InvoiceStatusPaid:      "Paid",
	InvoiceStatusExpired:   "Expired",
	InvoiceStatusCancelled: "Cancelled",
	InvoiceStatusUnknown:   "Unknown",
}

// MapInvoiceStatus maps a backend status code onto the closed status set.
// Codes are matched case-insensitively; anything else is InvoiceStatusUnknown.
func MapInvoiceStatus(code string) InvoiceStatus {
	s := InvoiceStatus(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := statusLabels[s]; ok && s != InvoiceStatusUnknown {
		return s
	}
	return InvoiceStatusUnknown
}

// Label returns the display label for the status
func (s InvoiceStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[InvoiceStatusUnknown]
}

// InvoiceRecord is an invoice as the backend returns it.
type InvoiceRecord struct {
	ID            string
	InvoiceNo     string
	CustomerName  string
	CustomerEmail string
	Status        string
	CreatedAt     time.Time
	ExpiresAt     *time.Time
	Amount        decimal.Decimal
	Currency      string

	// StablecoinAmount is the optional USDC equivalent
	StablecoinAmount *decimal.Decimal
}

// Validate returns an error if the record cannot be shown
func (r *InvoiceRecord) Validate() error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return errors.Mark(errors.New("invoice id is required"), ErrInvalidRecord)
	case strings.TrimSpace(r.InvoiceNo) == "":
		return errors.Mark(errors.Newf("invoice %s: invoice number is required", r.ID), ErrInvalidRecord)
	case r.CreatedAt.IsZero():
		return errors.Mark(errors.Newf("invoice %s: creation time is required", r.ID), ErrInvalidRecord)
	case r.Amount.IsNegative():
		return errors.Mark(errors.Newf("invoice %s: amount cannot be negative", r.ID), ErrInvalidRecord)
	case r.StablecoinAmount != nil && r.StablecoinAmount.IsNegative():
		return errors.Mark(errors.Newf("invoice %s: stablecoin amount cannot be negative", r.ID), ErrInvalidRecord)
	}
	return nil
}

// CreatedInvoice is the backend's confirmation of a created invoice.
type CreatedInvoice struct {
	ID         string
	InvoiceNo  string
	PaymentURL string
}
