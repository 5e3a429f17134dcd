package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zshift/matrix"
	"github.com/katalvlaran/zshift/shift"
)

// runBins prints the bin boundaries derived from each request's baseline.
func runBins(cmd *cobra.Command, args []string) error {
	_, reqs, err := loadRequests(files)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, req := range reqs {
		baseline := req.Stable
		if baseline == nil {
			if baseline, err = matrix.Average(req.Observed); err != nil {
				return fmt.Errorf("%s: %w", files[i], err)
			}
		}
		bins, err := shift.ComputeBinBoundaries(baseline)
		if err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}

		fmt.Fprintf(w, "%s:\n", files[i])
		for r, row := range bins {
			cells := make([]string, len(row))
			for j, x := range row {
				cells[j] = fmt.Sprintf("%.4f", x+0) // +0 folds -0
			}
			fmt.Fprintf(w, "  row %d: %s\n", r, strings.Join(cells, " "))
		}
	}

	return nil
}
