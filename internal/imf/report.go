package imf

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Report holds one record (or null) per supported country.
type Report[R any] struct {
	codes   []string
	entries map[string]*R
	Stats   Stats
}

func newReport[R any]() *Report[R] {
	return &Report[R]{
		codes:   Countries(),
		entries: make(map[string]*R, len(supportedCountries)),
	}
}

// Get returns the record for an alpha-2 code, or nil.
func (r *Report[R]) Get(code string) *R {
	return r.entries[code]
}

// Len returns the number of countries in the report, null entries included.
func (r *Report[R]) Len() int {
	return len(r.codes)
}

// Covered returns the number of countries with a non-null record.
func (r *Report[R]) Covered() int {
	n := 0
	for _, code := range r.codes {
		if r.entries[code] != nil {
			n++
		}
	}
	return n
}

// MarshalJSON renders the report as an object keyed by country code in
// table order, so repeated runs produce identical bytes.
func (r Report[R]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range r.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, eris.Wrapf(err, "report: marshal key %s", code)
		}
		val, err := json.Marshal(r.entries[code])
		if err != nil {
			return nil, eris.Wrapf(err, "report: marshal %s", code)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
