package domain

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// describeValidation turns the first validator failure into a sentence fit for a form footer.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return errors.Newf("%s is required", field)
	case "email":
		return errors.Newf("%s must be a valid email address", field)
	case "max":
		return errors.Newf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return errors.Newf("%s must be %s characters", field, fe.Param())
	case "uppercase":
		return errors.Newf("%s must be upper case", field)
	default:
		return errors.Newf("%s is invalid", field)
	}
}

// fieldLabel converts CustomerEmail into "customer email"
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
