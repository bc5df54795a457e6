// Package imf selects one representative observation per country from IMF
// CPI and interest-rate extracts.
package imf

import (
	"context"
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/sells-group/imf-cli/internal/source"
)

// MinYear is the earliest period year an emitted record may carry.
const MinYear = 2023

// Score orders candidates lexicographically; higher wins.
type Score [3]int

// Compare returns -1, 0 or +1 as s is less than, equal to or greater than o.
func (s Score) Compare(o Score) int {
	return slices.Compare(s[:], o[:])
}

// Extractor is the shared scan-and-rank algorithm. For every row of a
// supported country that passes Qualify, Build derives a candidate from the
// row's points; the highest Score per country survives, the first one seen
// winning ties. Emit turns the survivor into an output record, or nil for null.
type Extractor[C, R any] struct {
	Dataset string
	Qualify func(Row) bool
	Build   func(Row, []Point) (C, bool)
	Score   func(C) Score
	Emit    func(C) *R
}

// Stats counts what happened to the rows of one extract.
type Stats struct {
	Rows       int `json:"rows"`
	Unmapped   int `json:"unmapped"`
	Qualified  int `json:"qualified"`
	Candidates int `json:"candidates"`
	TimeCols   int `json:"time_columns"`
}

// ExtractFile reads the extract at path (CSV, XLSX or zipped) and ranks it.
func (e *Extractor[C, R]) ExtractFile(ctx context.Context, path string, opts source.Options) (*Report[R], error) {
	s := e.newScan()
	if err := source.ReadTable(ctx, path, opts, s); err != nil {
		return nil, err
	}
	return e.finish(s), nil
}

// Extract ranks a CSV extract read from r.
func (e *Extractor[C, R]) Extract(ctx context.Context, r io.Reader) (*Report[R], error) {
	s := e.newScan()
	if err := source.ReadCSV(ctx, r, source.CSVOptions{}, s); err != nil {
		return nil, err
	}
	return e.finish(s), nil
}

func (e *Extractor[C, R]) newScan() *scan[C, R] {
	return &scan[C, R]{
		ext:    e,
		layout: newLayout(nil),
		best:   make(map[string]C, len(supportedCountries)),
	}
}

func (e *Extractor[C, R]) finish(s *scan[C, R]) *Report[R] {
	report := newReport[R]()
	for _, code := range report.codes {
		c, ok := s.best[code]
		if !ok {
			continue
		}
		report.entries[code] = e.Emit(c)
	}
	report.Stats = s.stats

	zap.L().Debug("extract: ranked rows",
		zap.String("dataset", e.Dataset),
		zap.Int("rows", s.stats.Rows),
		zap.Int("unmapped", s.stats.Unmapped),
		zap.Int("qualified", s.stats.Qualified),
		zap.Int("candidates", s.stats.Candidates),
		zap.Int("time_columns", s.stats.TimeCols),
		zap.Int("covered", report.Covered()),
	)
	return report
}

// scan implements source.RowHandler and holds the rolling best per country.
type scan[C, R any] struct {
	ext    *Extractor[C, R]
	layout *layout
	best   map[string]C
	stats  Stats
}

func (s *scan[C, R]) Header(cols []string) error {
	s.layout = newLayout(cols)
	s.stats.TimeCols = len(s.layout.columns)
	return nil
}

func (s *scan[C, R]) Row(record []string) error {
	s.stats.Rows++
	row := Row{layout: s.layout, record: record}

	code, ok := CountryFromSeries(row.Field(ColSeriesCode))
	if !ok {
		s.stats.Unmapped++
		return nil
	}
	if !s.ext.Qualify(row) {
		return nil
	}
	s.stats.Qualified++

	candidate, ok := s.ext.Build(row, row.Points())
	if !ok {
		return nil
	}
	s.stats.Candidates++

	current, seen := s.best[code]
	if !seen || s.ext.Score(candidate).Compare(s.ext.Score(current)) > 0 {
		s.best[code] = candidate
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
