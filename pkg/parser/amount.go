package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRe matches an optionally signed monetary value with an optional
// dollar sign, thousands separators, and exactly two decimal digits.
var amountRe = regexp.MustCompile(`(-)?\$?(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2})`)

// ParseAmount finds the first monetary amount in s. A leading "-" negates
// the value; a trailing "-" on the trimmed input is the debit-suffix
// convention some statements use and forces the value negative regardless
// of any other sign marker.
func ParseAmount(s string) (decimal.Decimal, bool) {
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}

	val, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	if m[1] == "-" {
		val = val.Neg()
	}
	if strings.HasSuffix(strings.TrimSpace(s), "-") {
		val = val.Abs().Neg()
	}
	return val, true
}

// stripAmounts removes every amount occurrence from s, used when deriving a
// description from a matched transaction line.
func stripAmounts(s string) string {
	return amountRe.ReplaceAllString(s, "")
}
