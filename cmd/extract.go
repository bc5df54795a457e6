package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/imf-cli/internal/imf"
	"github.com/sells-group/imf-cli/internal/source"
)

// runLogger tags one command invocation.
func runLogger(dataset string) *zap.Logger {
	return zap.L().With(
		zap.String("run_id", uuid.NewString()),
		zap.String("dataset", dataset),
	)
}

func sourceOptions() source.Options {
	if cfg == nil {
		return source.Options{}
	}
	return source.Options{
		TempDir: cfg.Input.TempDir,
		Sheet:   cfg.Input.XLSXSheet,
		CSV: source.CSVOptions{
			Delimiter:  cfg.Input.Delimiter(),
			LazyQuotes: cfg.Input.CSVLazyQuotes,
		},
	}
}

// runExtract ranks the extract at in, writes the report to out and prints
// the coverage line. label names the data in that line ("CPI", "rate").
func runExtract[C, R any](cmd *cobra.Command, ext *imf.Extractor[C, R], in, out, label string) error {
	log := runLogger(ext.Dataset)
	log.Info("extract started", zap.String("input", in), zap.String("output", out))

	report, err := ext.ExtractFile(cmd.Context(), in, sourceOptions())
	if err != nil {
		return eris.Wrapf(err, "%s: extract", cmd.Name())
	}

	if err := source.WriteJSONFile(out, report); err != nil {
		return eris.Wrapf(err, "%s: write output", cmd.Name())
	}

	log.Info("extract complete",
		zap.Int("rows", report.Stats.Rows),
		zap.Int("qualified", report.Stats.Qualified),
		zap.Int("covered", report.Covered()),
		zap.Int("countries", report.Len()),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Countries with %s data: %d/%d -> %s\n", label, report.Covered(), report.Len(), out)
	return nil
}
