package imf

import "slices"

// Headline CPI row filter values.
const (
	cpiAllItems = "All Items"
	cpiIndex    = "Index"
)

// CPICandidate is the year-over-year pair derived from one CPI row.
type CPICandidate struct {
	Latest       Point
	Previous     *Point
	FreqPriority int
}

// CPIRecord is the per-country CPI output.
type CPIRecord struct {
	Latest       float64 `json:"latest" yaml:"latest"`
	LatestDate   string  `json:"latestDate" yaml:"latestDate"`
	Previous     float64 `json:"previous" yaml:"previous"`
	PreviousDate string  `json:"previousDate" yaml:"previousDate"`
}

// NewCPIExtractor returns the headline CPI extractor: index-form "All Items"
// series, ranked by coverage, then frequency, then whether a year-ago point exists.
func NewCPIExtractor() *Extractor[CPICandidate, CPIRecord] {
	return &Extractor[CPICandidate, CPIRecord]{
		Dataset: "cpi",
		Qualify: func(r Row) bool {
			return r.Field(ColCOICOP) == cpiAllItems &&
				r.Field(ColTransformation) == cpiIndex &&
				frequencyPriority(r.Field(ColFrequency)) > 0
		},
		Build: func(r Row, points []Point) (CPICandidate, bool) {
			c, ok := buildCPICandidate(points)
			c.FreqPriority = frequencyPriority(r.Field(ColFrequency))
			return c, ok
		},
		Score: func(c CPICandidate) Score {
			return Score{c.Latest.Key(), c.FreqPriority, boolInt(c.Previous != nil)}
		},
		Emit: emitCPI,
	}
}

// buildCPICandidate picks the latest point and the most recent point at least
// twelve months before it. Points sharing the latest key resolve to the one
// furthest right in the header.
func buildCPICandidate(points []Point) (CPICandidate, bool) {
	if len(points) == 0 {
		return CPICandidate{}, false
	}
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int { return a.Key() - b.Key() })

	c := CPICandidate{Latest: sorted[len(sorted)-1]}
	target := c.Latest.Key() - 12
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Key() <= target {
			prev := sorted[i]
			c.Previous = &prev
			break
		}
	}
	return c, true
}

func emitCPI(c CPICandidate) *CPIRecord {
	if c.Latest.Period.Year < MinYear || c.Previous == nil {
		return nil
	}
	return &CPIRecord{
		Latest:       round6(c.Latest.Value),
		LatestDate:   c.Latest.Period.Label,
		Previous:     round6(c.Previous.Value),
		PreviousDate: c.Previous.Period.Label,
	}
}
