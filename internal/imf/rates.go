package imf

import "strings"

// RateCandidate is the latest observation of one interest-rate row.
type RateCandidate struct {
	Point             Point
	FreqPriority      int
	IndicatorPriority int
}

// RateRecord is the per-country policy rate output.
type RateRecord struct {
	Value float64 `json:"value" yaml:"value"`
	Date  string  `json:"date" yaml:"date"`
}

// NewRateExtractor returns the interest-rate extractor: any row with a known
// frequency, ranked by coverage, then frequency, then indicator type.
func NewRateExtractor() *Extractor[RateCandidate, RateRecord] {
	return &Extractor[RateCandidate, RateRecord]{
		Dataset: "rates",
		Qualify: func(r Row) bool {
			return frequencyPriority(r.Field(ColFrequency)) > 0
		},
		Build: func(r Row, points []Point) (RateCandidate, bool) {
			latest, ok := latestPoint(points)
			if !ok {
				return RateCandidate{}, false
			}
			return RateCandidate{
				Point:             latest,
				FreqPriority:      frequencyPriority(r.Field(ColFrequency)),
				IndicatorPriority: indicatorPriority(r.Field(ColIndicator)),
			}, true
		},
		Score: func(c RateCandidate) Score {
			return Score{c.Point.Key(), c.FreqPriority, c.IndicatorPriority}
		},
		Emit: emitRate,
	}
}

// indicatorPriority prefers policy rates over discount rates over anything else.
func indicatorPriority(indicator string) int {
	normalized := strings.ToLower(indicator)
	switch {
	case strings.Contains(normalized, "monetary policy-related"):
		return 3
	case strings.Contains(normalized, "discount rate"):
		return 2
	default:
		return 1
	}
}

// latestPoint returns the point with the highest key; the leftmost column
// wins when several share it.
func latestPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	latest := points[0]
	for _, p := range points[1:] {
		if p.Key() > latest.Key() {
			latest = p
		}
	}
	return latest, true
}

func emitRate(c RateCandidate) *RateRecord {
	if c.Point.Period.Year < MinYear {
		return nil
	}
	return &RateRecord{
		Value: round6(c.Point.Value),
		Date:  c.Point.Period.Label,
	}
}
