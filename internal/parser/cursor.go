package parser

// lineCursor walks a statement line by line. Lines claimed by a lookahead
// are recorded in consumed and skipped by Next.
type lineCursor struct {
	lines    []string
	pos      int
	consumed map[int]bool
}

func newLineCursor(lines []string) *lineCursor {
	return &lineCursor{lines: lines, pos: -1, consumed: make(map[int]bool)}
}

// Next moves to the following unconsumed line.
func (c *lineCursor) Next() (string, bool) {
	for c.pos+1 < len(c.lines) {
		c.pos++
		if c.consumed[c.pos] {
			continue
		}
		return normalizeLine(c.lines[c.pos]), true
	}
	return "", false
}

// Lookahead scans at most window unconsumed lines after the current one and
// returns the index of the first line accepted by match. Scanning stops at
// the first line stop reports true for, so an adjacent transaction is never
// mistaken for the continuation of the current one.
func (c *lineCursor) Lookahead(window int, match, stop func(string) bool) (int, string, bool) {
	seen := 0
	for i := c.pos + 1; i < len(c.lines) && seen < window; i++ {
		if c.consumed[i] {
			continue
		}
		line := normalizeLine(c.lines[i])
		if line == "" {
			continue
		}
		seen++
		if match(line) {
			return i, line, true
		}
		if stop != nil && stop(line) {
			break
		}
	}
	return -1, "", false
}

// Consume marks line i as used so Next will not return it.
func (c *lineCursor) Consume(i int) {
	if i >= 0 {
		c.consumed[i] = true
	}
}
