package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/movo/dashboard/internal/domain"
	"github.com/samber/lo"
)

// FetchInvoices lists every invoice of the merchant, newest first as the backend orders them.
func (c *Client) FetchInvoices(ctx context.Context, account domain.Account) ([]domain.InvoiceRecord, error) {
	var raw jsoniter.RawMessage
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/invoices",
		query:  url.Values{"merchantAddress": {account.String()}},
	}, &raw)
	if err != nil {
		return nil, err
	}
	list, err := decodeInvoiceList(raw)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(i invoiceDTO, _ int) domain.InvoiceRecord {
		return i.toDomain()
	}), nil
}

// CreateInvoice submits draft. Retries reuse idempotencyKey so the backend creates it once.
func (c *Client) CreateInvoice(ctx context.Context, account domain.Account, draft domain.DraftInvoice, idempotencyKey string) (domain.CreatedInvoice, error) {
	var out createdInvoiceDTO
	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/api/invoices",
		headers: map[string]string{"Idempotency-Key": idempotencyKey},
		body:    newCreateInvoiceDTO(account, draft),
	}, &out)
	if err != nil {
		return domain.CreatedInvoice{}, err
	}
	if out.ID == "" && out.InvoiceNo == "" {
		return domain.CreatedInvoice{}, errors.New("create invoice: empty confirmation")
	}
	return domain.CreatedInvoice{
		ID:         out.ID,
		InvoiceNo:  out.InvoiceNo,
		PaymentURL: out.PaymentURL,
	}, nil
}
