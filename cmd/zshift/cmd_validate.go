package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zshift/config"
	"github.com/katalvlaran/zshift/matrix"
)

var errInvalidMatrices = errors.New("zshift: row-sum violations found")

// runValidate reports every violating row of every matrix. With a supplied
// stable matrix it is numbered 0 and observed matrices follow from 1;
// otherwise observed matrices are numbered from 1.
func runValidate(cmd *cobra.Command, args []string) error {
	docs, reqs, err := loadRequests(files)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	bad := 0
	for i, doc := range docs {
		ms, err := doc.Dense()
		if err != nil {
			return err
		}
		src, err := doc.Source()
		if err != nil {
			return err
		}
		first := 1
		if src == config.StableInput {
			first = 0
		}

		fmt.Fprintf(w, "%s:\n", files[i])
		for k, m := range ms {
			rep, err := matrix.ValidateStochastic(m, reqs[i].Options.RowSumTol)
			if err != nil {
				return err
			}
			if rep.Valid {
				fmt.Fprintf(w, "  matrix %d: ok\n", first+k)
				continue
			}
			bad++
			sums, _ := matrix.RowSums(m)
			for _, row := range rep.BadRows {
				fmt.Fprintf(w, "  matrix %d: row %d sums to %g\n", first+k, row, sums[row])
			}
		}
	}
	logger.Debug("validated", zap.Int("files", len(docs)), zap.Int("invalid", bad))

	if bad > 0 {
		return fmt.Errorf("%w: %d matrices", errInvalidMatrices, bad)
	}

	return nil
}
