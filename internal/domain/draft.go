package domain

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// CustomReference is a merchant-defined label/value pair printed on the invoice.
type CustomReference struct {
	Label string `validate:"required,max=40"`
	Value string `validate:"required,max=120"`
}

// DraftInvoice is an invoice being authored. It is never persisted locally.
type DraftInvoice struct {
	CustomerName  string `validate:"required,max=120"`
	CustomerEmail string `validate:"omitempty,email,max=254"`
	Amount        decimal.Decimal
	Currency      string `validate:"required,len=3,uppercase"`
	Description   string `validate:"max=500"`

	References []CustomReference `validate:"dive"`
}

// NewDraft returns an empty draft in the given currency
func NewDraft(currency string) DraftInvoice {
	return DraftInvoice{Currency: strings.ToUpper(currency)}
}

// Clone returns a deep copy so snapshots never share the references slice.
func (d DraftInvoice) Clone() DraftInvoice {
	out := d
	out.References = slices.Clone(d.References)
	return out
}

// Equal compares every field including reference order
func (d DraftInvoice) Equal(o DraftInvoice) bool {
	return d.CustomerName == o.CustomerName &&
		d.CustomerEmail == o.CustomerEmail &&
		d.Amount.Equal(o.Amount) &&
		d.Currency == o.Currency &&
		d.Description == o.Description &&
		slices.Equal(d.References, o.References)
}

// Validate returns an error if the draft cannot be previewed
func (d DraftInvoice) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.Mark(describeValidation(err), ErrInvalidDraft)
	}
	if !d.Amount.IsPositive() {
		return errors.Mark(errors.New("amount must be greater than zero"), ErrInvalidDraft)
	}
	return nil
}

// ParseAmount parses a form amount, accepting thousands separators ("1,500,000").
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, errors.Mark(errors.New("amount is required"), ErrInvalidDraft)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Mark(errors.Newf("invalid amount: %s", s), ErrInvalidDraft)
	}
	return amount, nil
}
