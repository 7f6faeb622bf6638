package parser

import (
	"regexp"
	"strings"
)

type sectionState int

const (
	outsideSection sectionState = iota
	insideSection
	closedSection
)

// Section tracks whether the lines being read belong to the transaction
// table of a statement. It opens on a start marker and closes for good on
// an end marker. A section without start markers is open from the first line.
type Section struct {
	Start []string
	End   []string
	// EndIf reports extra end-of-section lines, e.g. a lone total.
	EndIf func(line string) bool

	state sectionState
}

// NewSection returns a section gated by the given marker phrases.
func NewSection(start, end []string) *Section {
	s := &Section{Start: start, End: end}
	if len(start) == 0 {
		s.state = insideSection
	}
	return s
}

// Feed advances the state machine with line and reports whether the line
// is a candidate transaction line. Marker lines are never candidates.
func (s *Section) Feed(line string) bool {
	switch s.state {
	case outsideSection:
		if containsAny(line, s.Start) {
			s.state = insideSection
		}
		return false
	case insideSection:
		if s.IsEnd(line) {
			s.state = closedSection
			return false
		}
		if len(s.Start) > 0 && containsAny(line, s.Start) {
			return false
		}
		return true
	default:
		return false
	}
}

// IsEnd reports whether line closes the section.
func (s *Section) IsEnd(line string) bool {
	if containsAny(line, s.End) {
		return true
	}
	return s.EndIf != nil && s.EndIf(line)
}

// Inside reports whether the section is currently open.
func (s *Section) Inside() bool {
	return s.state == insideSection
}

// Closed reports whether an end marker has been seen.
func (s *Section) Closed() bool {
	return s.state == closedSection
}

var (
	footerMarkers = []string{"TOTAL DA FATURA", "RESUMO", "ENCARGOS"}
	creditMarkers = []string{"PAGAMENTO", "CREDITO", "VALOR ANTECIPADO", "ESTORNO"}
)

// plusCurrencyPattern matches the "+ R$" credit marker.
var plusCurrencyPattern = regexp.MustCompile(`\+\s*R\$`)

// IsFooter reports whether a line is a statement total or summary line.
// Such lines never produce a transaction, even when they carry a date.
func IsFooter(line string) bool {
	return containsAny(line, footerMarkers)
}

// IsCredit reports whether a line describes a payment, refund or credit.
func IsCredit(line string) bool {
	return containsAny(line, creditMarkers) || plusCurrencyPattern.MatchString(line)
}

// amountLinePattern matches a line holding only a signed, currency prefixed amount.
var amountLinePattern = regexp.MustCompile(`^([-+])?\s*R\$\s*([-+]?\d+(?:\.\d{3})*,\d{2})$`)

// IsLoneTotal reports whether a line holds nothing but an amount.
func IsLoneTotal(line string) bool {
	line = normalizeLine(line)
	return amountLinePattern.MatchString(line) || isAmountToken(line)
}

// IsCandidate reports whether line has the shape of a transaction line.
func IsCandidate(line string) bool {
	return startsWithDate(strings.TrimSpace(line))
}
