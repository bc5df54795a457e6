package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/imf-cli/internal/countries"
	"github.com/sells-group/imf-cli/internal/source"
)

var (
	buildBasePath  string
	buildCPIPath   string
	buildRatesPath string
	buildOutPath   string
)

var buildCountriesCmd = &cobra.Command{
	Use:   "build-countries",
	Short: "Merge base country metadata with parsed CPI and rate files",
	Long: `Joins the base countries file with the outputs of parse-cpi and parse-rates.
Countries without CPI data are dropped; countries without a rate keep a null rate.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := runLogger("countries")

		base, err := countries.LoadBase(buildBasePath)
		if err != nil {
			return eris.Wrap(err, "build-countries")
		}
		cpi, err := countries.LoadCPI(buildCPIPath)
		if err != nil {
			return eris.Wrap(err, "build-countries")
		}
		rates, err := countries.LoadRates(buildRatesPath)
		if err != nil {
			return eris.Wrap(err, "build-countries")
		}

		out, summary := countries.Merge(base, cpi, rates)
		if err := source.WriteJSONFile(buildOutPath, out); err != nil {
			return eris.Wrap(err, "build-countries: write output")
		}

		log.Info("merge complete",
			zap.String("output", buildOutPath),
			zap.Strings("with_rate", summary.WithRate),
			zap.Strings("inflation_only", summary.InflationOnly),
			zap.Strings("dropped_no_cpi", summary.DroppedNoCPI),
		)
		fmt.Fprintln(cmd.OutOrStdout(), summary.String())
		return nil
	},
}

func init() {
	buildCountriesCmd.Flags().StringVar(&buildBasePath, "base", "", "base countries JSON path for names and currencies (required)")
	buildCountriesCmd.Flags().StringVar(&buildCPIPath, "cpi", "", "parsed CPI JSON path (required)")
	buildCountriesCmd.Flags().StringVar(&buildRatesPath, "rates", "", "parsed rates JSON path (required)")
	buildCountriesCmd.Flags().StringVar(&buildOutPath, "out", "", "output countries JSON path (required)")
	for _, name := range []string{"base", "cpi", "rates", "out"} {
		_ = buildCountriesCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(buildCountriesCmd)
}
