package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StablecoinSymbol is the settlement token shown next to equivalent amounts.
const StablecoinSymbol = "USDC"

// currencies without minor units
var zeroDecimalCurrencies = map[string]bool{
	"IDR": true,
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// FormatAmount renders an amount with thousands separators, e.g. "IDR 1,500,000" or "USD 12.50".
func FormatAmount(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(currency)
	places := int32(2)
	if zeroDecimalCurrencies[currency] {
		places = 0
	}

	negative := amount.IsNegative()
	s := amount.Abs().StringFixed(places)

	intPart, decPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, decPart = s[:dot], s[dot:]
	}

	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, intPart[i])
	}

	out := string(grouped) + decPart
	if negative {
		out = "-" + out
	}
	if currency == "" {
		return out
	}
	return currency + " " + out
}

// FormatStablecoin renders the "≈ 6.25 USDC" hint
func FormatStablecoin(amount decimal.Decimal) string {
	return "≈ " + amount.String() + " " + StablecoinSymbol
}
