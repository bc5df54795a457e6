package source

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVOptions configures the CSV reader.
type CSVOptions struct {
	Delimiter  rune // default ','
	LazyQuotes bool
}

// ReadCSV reads r row by row, handing the first record to h.Header and the
// rest to h.Row. A leading byte order mark is consumed, and UTF-16 input with
// a BOM is decoded to UTF-8. An empty input calls neither method.
func ReadCSV(ctx context.Context, r io.Reader, opts CSVOptions, h RowHandler) error {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	first := true
	for {
		if ctx.Err() != nil {
			return eris.Wrap(ctx.Err(), "csv: context cancelled")
		}

		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return eris.Wrap(err, "csv: read row")
		}

		if first {
			first = false
			if err := h.Header(record); err != nil {
				return err
			}
			continue
		}

		if err := h.Row(record); err != nil {
			return err
		}
	}
}
