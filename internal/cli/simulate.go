package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hannawannana/simulated-bond-index-construction/internal/app"
)

var simulatePricesCSV string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the strategies against a local monthly price CSV without network access",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulatePricesCSV == "" {
			return errors.New("--prices is required")
		}
		return getApp().Simulate(cmd.Context(), app.SimulateOptions{PricesCSVPath: simulatePricesCSV})
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulatePricesCSV, "prices", "", "Path to a Date,1Y,5Y,10Y price CSV")
}
