package api

import (
	"bytes"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type merchantDTO struct {
	WalletAddress    string `json:"walletAddress,omitempty"`
	Name             string `json:"name"`
	BusinessName     string `json:"businessName"`
	Email            string `json:"email"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

func (m merchantDTO) toDomain() *domain.MerchantProfile {
	return &domain.MerchantProfile{
		Name:             m.Name,
		BusinessName:     m.BusinessName,
		Email:            m.Email,
		ProfileCompleted: m.ProfileCompleted,
	}
}

type invoiceDTO struct {
	ID            string           `json:"id"`
	InvoiceNo     string           `json:"invoiceNo"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	ExpiresAt     *time.Time       `json:"expiresAt"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency"`
	UsdcAmount    *decimal.Decimal `json:"usdcAmount"`
}

func (i invoiceDTO) toDomain() domain.InvoiceRecord {
	return domain.InvoiceRecord{
		ID:               i.ID,
		InvoiceNo:        i.InvoiceNo,
		CustomerName:     i.CustomerName,
		CustomerEmail:    i.CustomerEmail,
		Status:           i.Status,
		CreatedAt:        i.CreatedAt,
		ExpiresAt:        i.ExpiresAt,
		Amount:           i.Amount,
		Currency:         i.Currency,
		StablecoinAmount: i.UsdcAmount,
	}
}

// decodeInvoiceList accepts a bare array or an object wrapping it in "data" or "invoices".
func decodeInvoiceList(body []byte) ([]invoiceDTO, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	var list []invoiceDTO
	if body[0] == '[' {
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, errors.Wrap(err, "decode invoice list")
		}
		return list, nil
	}
	var wrapped struct {
		Data     []invoiceDTO `json:"data"`
		Invoices []invoiceDTO `json:"invoices"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, errors.Wrap(err, "decode invoice list")
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return wrapped.Invoices, nil
}

type referenceDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type createInvoiceDTO struct {
	MerchantAddress  string          `json:"merchantAddress"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Description      string          `json:"description,omitempty"`
	CustomReferences []referenceDTO  `json:"customReferences,omitempty"`
}

func newCreateInvoiceDTO(account domain.Account, d domain.DraftInvoice) createInvoiceDTO {
	return createInvoiceDTO{
		MerchantAddress: account.String(),
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		Amount:          d.Amount,
		Currency:        d.Currency,
		Description:     d.Description,
		CustomReferences: lo.Map(d.References, func(r domain.CustomReference, _ int) referenceDTO {
			return referenceDTO{Label: r.Label, Value: r.Value}
		}),
	}
}

type createdInvoiceDTO struct {
	ID         string `json:"id"`
	InvoiceNo  string `json:"invoiceNo"`
	PaymentURL string `json:"paymentUrl"`
}
