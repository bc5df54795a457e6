// Package source reads local IMF extracts (CSV, XLSX, zipped CSV) and JSON or
// YAML documents, and writes JSON outputs atomically.
package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// RowHandler receives a table's header once, then every data row in order.
type RowHandler interface {
	Header(cols []string) error
	Row(record []string) error
}

// Options configures ReadTable.
type Options struct {
	TempDir string // where .zip extracts are unpacked
	Sheet   string // xlsx sheet name; empty means the first sheet
	CSV     CSVOptions
}

// ReadTable reads a tabular extract from path and feeds it to h. The format is
// chosen by extension: .xlsx, .zip (exactly one CSV or XLSX inside), anything
// else is read as CSV.
func ReadTable(ctx context.Context, path string, opts Options, h RowHandler) error {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return readZippedTable(ctx, path, opts, h)
	}
	return readPlainTable(ctx, path, opts, h)
}

func readPlainTable(ctx context.Context, path string, opts Options, h RowHandler) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ScanXLSX(ctx, path, XLSXOptions{SheetName: opts.Sheet}, h)
	case ".zip":
		return eris.Errorf("source: nested archive %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "source: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	return ReadCSV(ctx, f, opts.CSV, h)
}

func readZippedTable(ctx context.Context, path string, opts Options, h RowHandler) error {
	base := opts.TempDir
	if base == "" {
		base = os.TempDir()
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return eris.Wrap(err, "source: create temp dir")
	}
	dir, err := os.MkdirTemp(base, "extract-*")
	if err != nil {
		return eris.Wrap(err, "source: create extract dir")
	}
	defer os.RemoveAll(dir) //nolint:errcheck

	extracted, err := ExtractTable(path, dir)
	if err != nil {
		return err
	}
	return readPlainTable(ctx, extracted, opts, h)
}
