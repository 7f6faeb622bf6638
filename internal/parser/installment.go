package parser

import (
	"regexp"
	"strings"
)

var (
	installmentPattern        = regexp.MustCompile(`(\d{2})/(\d{2})`)
	installmentVerbosePattern = regexp.MustCompile(`(?i)parcela\s+(\d{2})\s+de\s+(\d{2})`)
	installmentTokenPattern   = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

// FindInstallment returns the first "NN/MM" marker found anywhere in s.
// The verbose "Parcela NN de MM" form is converted to "NN/MM".
// Markers glued to merchant names ("HIP07/12") are found as well.
func FindInstallment(s string) *string {
	if m := installmentPattern.FindStringSubmatch(s); m != nil {
		v := m[1] + "/" + m[2]
		return &v
	}
	if m := installmentVerbosePattern.FindStringSubmatch(s); m != nil {
		v := m[1] + "/" + m[2]
		return &v
	}
	return nil
}

// stripInstallment removes the marker FindInstallment would return from s.
func stripInstallment(s string) string {
	if loc := installmentPattern.FindStringIndex(s); loc != nil {
		return cleanEstablishment(s[:loc[0]] + " " + s[loc[1]:])
	}
	if loc := installmentVerbosePattern.FindStringIndex(s); loc != nil {
		return cleanEstablishment(s[:loc[0]] + " " + s[loc[1]:])
	}
	return s
}

// isInstallmentToken reports whether a whole token is an "NN/MM" marker.
func isInstallmentToken(tok string) bool {
	return installmentTokenPattern.MatchString(tok)
}

// cleanEstablishment collapses blanks and trims dangling separators left
// behind once installment and value tokens are removed.
func cleanEstablishment(s string) string {
	s = joinFields(strings.Fields(s))
	return strings.TrimSpace(strings.Trim(s, "-–| "))
}
