package cli

import (
	"github.com/spf13/cobra"

	"github.com/hannawannana/simulated-bond-index-construction/internal/app"
)

var (
	runCSVPath string
	runPNGPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch data, simulate the bond index strategies, and write the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.RunOptions{
			CSVPath: runCSVPath,
			PNGPath: runPNGPath,
		}
		return getApp().Run(cmd.Context(), opts)
	},
}

func init() {
	runCmd.Flags().StringVar(&runCSVPath, "csv", "", "Override path for the results CSV")
	runCmd.Flags().StringVar(&runPNGPath, "png", "", "Override path for the comparison chart PNG")
}
