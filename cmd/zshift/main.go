// Command zshift estimates credit-cycle Z shifts from transition matrices.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zshift/config"
)

var (
	// Global flags
	verbose bool
	files   []string

	// Estimate flags
	outPath string
	format  string
	workers int

	settings config.Settings
	logger   *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "zshift",
	Short: "Estimate credit-cycle Z shifts from rating transition matrices",
	Long: `zshift fits one scalar Z per observed transition matrix so that the
stable matrix, shifted by Z, best reproduces the observation.

Methodologies:
  - logit:   uniform log-odds shock, squared-error loss
  - vasicek: single-factor Gaussian model, squared-error loss

Requests are YAML files; see "zshift estimate --help".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if settings, err = config.LoadSettings(); err != nil {
			return err
		}
		cfg, err := settings.ZapConfig(verbose)
		if err != nil {
			return err
		}
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate -f request.yaml [-f ...]",
	Short: "Fit a Z shift for every observed matrix",
	Long: `Runs every request file as one batch and writes the shifts in file order.

Example request:
  methodology: vasicek
  rho: 0.15
  stable: input
  matrices:
    - [[0.9, 0.1], [0.2, 0.8]]
    - [[0.8, 0.2], [0.3, 0.7]]`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

var validateCmd = &cobra.Command{
	Use:   "validate -f request.yaml [-f ...]",
	Short: "Check that every matrix row sums to 1",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var binsCmd = &cobra.Command{
	Use:   "bins -f request.yaml",
	Short: "Print the Vasicek bin boundaries of the stable matrix",
	Args:  cobra.NoArgs,
	RunE:  runBins,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringArrayVarP(&files, "file", "f", nil, "Request file (repeatable)")

	estimateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write results to this path instead of stdout")
	estimateCmd.Flags().StringVar(&format, "format", "", "Output format: table, csv or xlsx (default from ZSHIFT_OUTPUT_FORMAT)")
	estimateCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent requests (default from ZSHIFT_WORKERS)")

	rootCmd.AddCommand(estimateCmd, validateCmd, binsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
