package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Date prefixes found in Brazilian statements.
var (
	// DD/MM (card statements, year implied by the billing cycle)
	datePatternShort = regexp.MustCompile(`^(\d{2}/\d{2})(?:\s|$)`)
	// DD/MM/YYYY
	datePatternFull = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})(?:\s|$)`)
	// DD de Mon. YYYY (e.g. "12 de jan. 2024", "3 de março 2024")
	datePatternVerbose = regexp.MustCompile(`(?i)^(\d{1,2}\s+de\s+(?:jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez)[a-zç]*\.?\s+\d{4})(?:\s|$)`)
	// DD MON (e.g. "12 JUN")
	datePatternMonth = regexp.MustCompile(`(?i)^(\d{2}\s+(?:jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez))(?:\s|$)`)
)

func leadingDate(pattern *regexp.Regexp, line string) string {
	m := pattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return ""
	}
	return m[1]
}

// startsWithShortDate checks if a line begins with "DD/MM" (and not "DD/MM/YYYY").
func startsWithShortDate(line string) bool {
	return datePatternShort.MatchString(strings.TrimSpace(line))
}

// startsWithFullDate checks if a line begins with "DD/MM/YYYY".
func startsWithFullDate(line string) bool {
	return datePatternFull.MatchString(strings.TrimSpace(line))
}

// startsWithVerboseDate checks if a line begins with "DD de Mon. YYYY".
func startsWithVerboseDate(line string) bool {
	return datePatternVerbose.MatchString(strings.TrimSpace(line))
}

// startsWithMonthDate checks if a line begins with "DD MON".
func startsWithMonthDate(line string) bool {
	return datePatternMonth.MatchString(strings.TrimSpace(line))
}

// startsWithDate reports whether a line begins with any known date shape.
func startsWithDate(line string) bool {
	return startsWithShortDate(line) || startsWithFullDate(line) ||
		startsWithVerboseDate(line) || startsWithMonthDate(line)
}

// splitFields splits a line into whitespace-separated tokens.
func splitFields(line string) []string {
	return strings.Fields(normalizeLine(line))
}

// normalizeLine cleans up common PDF extraction artifacts.
func normalizeLine(line string) string {
	line = strings.ReplaceAll(line, "\u00A0", " ")
	line = strings.ReplaceAll(line, "\u200B", "")
	line = strings.ReplaceAll(line, "\u2212", "-") // unicode minus
	line = strings.ReplaceAll(line, "\t", " ")
	return strings.TrimSpace(line)
}

var accentFolder = runes.Remove(runes.In(unicode.Mn))

// fold upper-cases s and strips diacritics so "Crédito" matches "CREDITO".
func fold(s string) string {
	t := transform.Chain(norm.NFD, accentFolder, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), " "))
}

// containsAny reports whether text contains any needle, ignoring case and accents.
func containsAny(text string, needles []string) bool {
	folded := fold(text)
	for _, needle := range needles {
		if needle != "" && strings.Contains(folded, fold(needle)) {
			return true
		}
	}
	return false
}

// joinFields rebuilds a text fragment from tokens with single spaces.
func joinFields(tokens []string) string {
	return strings.TrimSpace(strings.Join(tokens, " "))
}
