// Package countries joins base country metadata with parsed CPI and rate files.
package countries

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/imf-cli/internal/source"
)

// Source is the attribution written into the merged file.
const Source = "IMF data.imf.org"

// Country is one entry of the base metadata file.
type Country struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	CurrencyCode   string `json:"currencyCode" yaml:"currencyCode"`
	CurrencySymbol string `json:"currencySymbol" yaml:"currencySymbol"`
}

// Base is the base metadata document.
type Base struct {
	Countries []Country `json:"countries" yaml:"countries"`
}

// Entries maps a country id to its entry in a parsed CPI or rate file. The
// entry is kept as raw JSON and written back unchanged.
type Entries map[string]json.RawMessage

// Record is one merged country. CPI is always set; a nil Rate is written as null.
type Record struct {
	Country
	CPI  json.RawMessage `json:"cpi"`
	Rate json.RawMessage `json:"rate"`
}

// Output is the merged countries document.
type Output struct {
	Source    string   `json:"source"`
	Countries []Record `json:"countries"`
}

// Summary sorts base country ids into the three merge outcomes.
type Summary struct {
	WithRate      []string
	InflationOnly []string
	DroppedNoCPI  []string
}

// String renders the one-line run summary.
func (s Summary) String() string {
	return fmt.Sprintf("Total output countries: %d (with rate: %d, inflation only: %d, dropped no CPI: %d)",
		len(s.WithRate)+len(s.InflationOnly), len(s.WithRate), len(s.InflationOnly), len(s.DroppedNoCPI))
}

// LoadBase reads the base metadata file (JSON, or YAML by extension).
func LoadBase(path string) (*Base, error) {
	base, err := source.DecodeFile[Base](path)
	if err != nil {
		return nil, eris.Wrap(err, "countries: load base")
	}
	return base, nil
}

// LoadCPI reads a parsed CPI file.
func LoadCPI(path string) (Entries, error) {
	m, err := source.DecodeFile[Entries](path)
	if err != nil {
		return nil, eris.Wrap(err, "countries: load cpi")
	}
	return *m, nil
}

// LoadRates reads a parsed rates file.
func LoadRates(path string) (Entries, error) {
	m, err := source.DecodeFile[Entries](path)
	if err != nil {
		return nil, eris.Wrap(err, "countries: load rates")
	}
	return *m, nil
}

// lookup returns the entry for id, or nil when it is missing or empty:
// null, false, 0, "", [] and {} all count as no data.
func (e Entries) lookup(id string) json.RawMessage {
	raw, ok := e[id]
	if !ok {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		if !t {
			return nil
		}
	case float64:
		if t == 0 {
			return nil
		}
	case string:
		if t == "" {
			return nil
		}
	case []any:
		if len(t) == 0 {
			return nil
		}
	case map[string]any:
		if len(t) == 0 {
			return nil
		}
	}
	return raw
}

// Merge walks base in order. Countries without CPI data are dropped; the rest
// carry their CPI entry and their rate entry or null, both as read.
func Merge(base *Base, cpi, rates Entries) (*Output, Summary) {
	out := &Output{Source: Source, Countries: []Record{}}
	var summary Summary

	for _, c := range base.Countries {
		cpiRec := cpi.lookup(c.ID)
		if cpiRec == nil {
			summary.DroppedNoCPI = append(summary.DroppedNoCPI, c.ID)
			continue
		}

		rec := Record{Country: c, CPI: cpiRec}
		if rate := rates.lookup(c.ID); rate != nil {
			rec.Rate = rate
			summary.WithRate = append(summary.WithRate, c.ID)
		} else {
			summary.InflationOnly = append(summary.InflationOnly, c.ID)
		}
		out.Countries = append(out.Countries, rec)
	}

	return out, summary
}
