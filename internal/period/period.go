// Package period parses IMF time-column headers into comparable month keys.
package period

import (
	"regexp"
	"strconv"
)

var (
	monthlyRe   = regexp.MustCompile(`^(\d{4})-M(0[1-9]|1[0-2])$`)
	quarterlyRe = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)
	annualRe    = regexp.MustCompile(`^(\d{4})$`)
)

// Period is a parsed column header such as "2024-M03", "2024-Q1" or "2024".
type Period struct {
	Label string
	Year  int
	Month int // month equivalent: month, quarter*3, or 12 for annual
}

// Key returns the chronological sort key year*12 + month.
func (p Period) Key() int {
	return p.Year*12 + p.Month
}

// Parse converts a header label into a Period. Monthly, quarterly and annual
// forms are tried in that order; anything else is not a period.
func Parse(label string) (Period, bool) {
	if m := monthlyRe.FindStringSubmatch(label); m != nil {
		return build(label, m[1], atoi(m[2])), true
	}
	if m := quarterlyRe.FindStringSubmatch(label); m != nil {
		return build(label, m[1], atoi(m[2])*3), true
	}
	if m := annualRe.FindStringSubmatch(label); m != nil {
		return build(label, m[1], 12), true
	}
	return Period{}, false
}

func build(label, year string, month int) Period {
	return Period{Label: label, Year: atoi(year), Month: month}
}

// atoi is only called on regexp-validated digit groups.
func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
