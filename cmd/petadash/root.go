package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	petalog "github.com/YaanFzl/VisualisasiBogor/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for petadash.
var rootCmd = &cobra.Command{
	Use:   "petadash",
	Short: "Visualize potensi and realisasi per kecamatan of Kabupaten Bogor",
	Long: `Petadash turns a potensi/realisasi spreadsheet into a monitoring
dashboard: a choropleth map of Kabupaten Bogor colored per kecamatan, summary
cards, and a ranked achievement table. It reads CSV, Excel (including the
two-sheet POTENSI/AKUISISI event form), or a remote JSON endpoint.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		petalog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}
