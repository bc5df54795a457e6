package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/imf-cli/internal/imf"
)

var (
	parseCPICSV string
	parseCPIOut string
)

var parseCPICmd = &cobra.Command{
	Use:   "parse-cpi",
	Short: "Extract headline CPI per country from an IMF CPI extract",
	Long: `Reads an IMF CPI extract and writes, per supported country, the latest
headline index value and the most recent value at least a year earlier.

Only "All Items" index series with a monthly, quarterly or annual frequency
qualify. Countries whose best series ends before 2023 or has no year-ago
value are written as null.

The extract may be a CSV file, an .xlsx workbook or a .zip holding one of them.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExtract(cmd, imf.NewCPIExtractor(), parseCPICSV, parseCPIOut, "CPI")
	},
}

func init() {
	parseCPICmd.Flags().StringVar(&parseCPICSV, "csv", "", "path to IMF CPI extract (required)")
	parseCPICmd.Flags().StringVar(&parseCPIOut, "out", "", "output JSON path (required)")
	_ = parseCPICmd.MarkFlagRequired("csv")
	_ = parseCPICmd.MarkFlagRequired("out")
	rootCmd.AddCommand(parseCPICmd)
}
