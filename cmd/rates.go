package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/imf-cli/internal/imf"
)

var (
	parseRatesCSV string
	parseRatesOut string
)

var parseRatesCmd = &cobra.Command{
	Use:   "parse-rates",
	Short: "Extract the latest policy interest rate per country from an IMF MFS_IR extract",
	Long: `Reads an IMF interest-rate extract and writes the latest observation of the
best series per supported country. Later coverage wins first, then frequency,
then indicator type (monetary policy-related > discount rate > other).
Countries whose best observation is older than 2023 are written as null.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExtract(cmd, imf.NewRateExtractor(), parseRatesCSV, parseRatesOut, "rate")
	},
}

func init() {
	parseRatesCmd.Flags().StringVar(&parseRatesCSV, "csv", "", "path to IMF MFS_IR extract (required)")
	parseRatesCmd.Flags().StringVar(&parseRatesOut, "out", "", "output JSON path (required)")
	_ = parseRatesCmd.MarkFlagRequired("csv")
	_ = parseRatesCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(parseRatesCmd)
}
