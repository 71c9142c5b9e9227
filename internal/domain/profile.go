package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// MerchantProfile is the onboarding profile owned by the backend.
type MerchantProfile struct {
	Name             string
	BusinessName     string
	Email            string
	ProfileCompleted bool
}

// DisplayName picks the best label for the sidebar: name, business name, then the short address.
func (p *MerchantProfile) DisplayName(account Account) string {
	if p != nil {
		if p.Name != "" {
			return p.Name
		}
		if p.BusinessName != "" {
			return p.BusinessName
		}
	}
	return account.Short()
}

// Contact returns the profile email, falling back to the full address.
func (p *MerchantProfile) Contact(account Account) string {
	if p != nil && p.Email != "" {
		return p.Email
	}
	return account.String()
}

// ProfileUpdate is what the onboarding form submits.
type ProfileUpdate struct {
	Name         string `validate:"required,max=100"`
	BusinessName string `validate:"required,max=150"`
	Email        string `validate:"required,email,max=254"`
}

// NewProfileUpdate trims the raw form values
func NewProfileUpdate(name, businessName, email string) ProfileUpdate {
	return ProfileUpdate{
		Name:         strings.TrimSpace(name),
		BusinessName: strings.TrimSpace(businessName),
		Email:        strings.TrimSpace(email),
	}
}

// Validate returns an error if the update is incomplete
func (u ProfileUpdate) Validate() error {
	if err := validate.Struct(u); err != nil {
		return errors.Mark(errors.Wrap(describeValidation(err), "profile"), ErrInvalidProfile)
	}
	return nil
}
