package imf

import (
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/imf-cli/internal/period"
)

// IMF extract column names.
const (
	ColSeriesCode     = "SERIES_CODE"
	ColFrequency      = "FREQUENCY"
	ColCOICOP         = "COICOP_1999"
	ColTransformation = "TYPE_OF_TRANSFORMATION"
	ColIndicator      = "INDICATOR"
)

// Point is one numeric observation read from a temporal column.
type Point struct {
	Value  float64
	Period period.Period
}

// Key returns the point's chronological key.
func (p Point) Key() int { return p.Period.Key() }

type timeColumn struct {
	idx    int
	period period.Period
}

// layout is the column structure shared by all rows of one extract.
type layout struct {
	index   map[string]int
	columns []timeColumn
}

func newLayout(header []string) *layout {
	l := &layout{index: make(map[string]int, len(header))}
	for i, col := range header {
		if _, dup := l.index[col]; !dup {
			l.index[col] = i
		}
		if p, ok := period.Parse(col); ok {
			l.columns = append(l.columns, timeColumn{idx: i, period: p})
		}
	}
	return l
}

// Row is one extract record addressed by column name.
type Row struct {
	layout *layout
	record []string
}

// Field returns the trimmed value of the named column, or "" if the column
// is absent from the header or the record is short.
func (r Row) Field(name string) string {
	idx, ok := r.layout.index[name]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

// Points returns every numeric observation in the row, in header order.
// Empty and non-numeric cells are skipped.
func (r Row) Points() []Point {
	var points []Point
	for _, col := range r.layout.columns {
		if col.idx >= len(r.record) {
			continue
		}
		v, ok := parseValue(r.record[col.idx])
		if !ok {
			continue
		}
		points = append(points, Point{Value: v, Period: col.period})
	}
	return points
}

func parseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// frequencyPriority ranks series frequencies; 0 disqualifies the row.
func frequencyPriority(freq string) int {
	switch freq {
	case "Monthly":
		return 3
	case "Quarterly":
		return 2
	case "Annual":
		return 1
	default:
		return 0
	}
}

// round6 rounds v to six decimal places, correctly rounding the exact binary
// value. Finite inputs always give finite results.
func round6(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	if err != nil {
		return v
	}
	return r
}
