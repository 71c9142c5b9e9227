package api

import (
	"context"
	"net/http"

	"github.com/movo/dashboard/internal/domain"
)

// GetMerchantProfile returns domain.ErrProfileNotFound when the merchant has never saved a profile.
func (c *Client) GetMerchantProfile(ctx context.Context, account domain.Account) (*domain.MerchantProfile, error) {
	var out merchantDTO
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/merchants/" + account.String(),
	}, &out)
	if httpErr, ok := IsHTTPError(err); ok && httpErr.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// SaveMerchantProfile creates or replaces the merchant profile
func (c *Client) SaveMerchantProfile(ctx context.Context, account domain.Account, update domain.ProfileUpdate) (*domain.MerchantProfile, error) {
	var out merchantDTO
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/merchants/" + account.String(),
		body: merchantDTO{
			WalletAddress: account.String(),
			Name:          update.Name,
			BusinessName:  update.BusinessName,
			Email:         update.Email,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}
