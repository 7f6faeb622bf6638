package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned by ParseAmount for tokens that are not numbers.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	// amountTokenPattern matches a locale amount token such as "1.265,53",
	// "-45,90", "R$45,90" or the trailing-minus form "100,00-".
	amountTokenPattern = regexp.MustCompile(`^[-+]?(?:R\$)?[-+]?\d+(?:\.\d{3})*,\d{2}-?$`)
	// localAmountPattern is the unsigned body of a locale amount.
	localAmountPattern = regexp.MustCompile(`^\d+(?:\.\d{3})*,\d+$`)
	// canonicalAmountPattern is the unsigned body of a canonical amount.
	canonicalAmountPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// isAmountToken reports whether a whitespace token looks like a monetary value.
func isAmountToken(tok string) bool {
	return amountTokenPattern.MatchString(tok)
}

// NormalizeAmount converts a locale amount ("1.265,53") into canonical form
// ("1265.53"). Canonical input is returned as is, repeated leading minus signs
// collapse into one and a trailing minus moves to the front. Tokens of any
// other shape are returned unchanged.
func NormalizeAmount(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00A0", "")
	s = strings.ReplaceAll(s, "\u2212", "-")

	negative := false
	for s != "" {
		if s[0] == '-' {
			negative = true
		} else if s[0] != '+' && !strings.HasPrefix(s, "R$") {
			break
		}
		if strings.HasPrefix(s, "R$") {
			s = s[2:]
		} else {
			s = s[1:]
		}
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}

	var body string
	switch {
	case localAmountPattern.MatchString(s):
		body = strings.ReplaceAll(s, ".", "")
		body = strings.Replace(body, ",", ".", 1)
	case canonicalAmountPattern.MatchString(s):
		body = s
	default:
		return raw
	}

	if negative {
		return "-" + body
	}
	return body
}

// FoldSign merges a lone "-" token that precedes an amount into the amount.
func FoldSign(prev, amount string) string {
	if strings.TrimSpace(prev) != "-" {
		return amount
	}
	return NormalizeAmount("-" + strings.TrimLeft(amount, "-"))
}

// forceNegative marks a canonical amount as a credit.
func forceNegative(amount string) string {
	if amount == "" || strings.HasPrefix(amount, "-") {
		return amount
	}
	return "-" + amount
}

// forcePositive drops the sign from a canonical amount.
func forcePositive(amount string) string {
	return strings.TrimLeft(amount, "-")
}

// ParseAmount normalizes raw and parses it as a decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(NormalizeAmount(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}
