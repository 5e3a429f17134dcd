// Package zshift estimates credit-cycle Z shifts: one scalar per observed
// rating transition matrix that, applied to a stable (through-the-cycle)
// matrix, best reproduces what was observed.
//
// 🚀 What is in the box?
//
//	• Transition matrices: dense row-major storage, row-sum validation, averaging
//	• Two models behind one pipeline:
//		– logit:   uniform log-odds shock, squared-error loss
//		– vasicek: single-factor Gaussian model, squared-error loss
//	• Golden-section search on a configurable bracket
//	• Concurrent batches of independent requests
//	• CSV, Excel and console reports; YAML request files; a cobra CLI
//
// ✨ Sign convention
//
//	Under vasicek, positive Z moves probability mass of each row toward its
//	rightmost columns; negative Z moves it toward the leftmost ones.
//
// Under the hood, everything is organized in small packages:
//
//	matrix/      — Dense type, ValidateStochastic / ValidateAll, Average
//	optimize/    — golden-section minimization of a 1-D function
//	shift/       — methodologies, objectives, bin boundaries, Pipeline, RunBatch
//	report/      — WriteCSV, WriteXLSX, WriteTable
//	config/      — YAML request files and ZSHIFT_* environment settings
//	cmd/zshift/  — estimate, validate and bins commands
//	examples/    — runnable walkthrough and sample request files
//
// Quick start:
//
//	stable := matrix.MustFromRows([][]float64{{0.5, 0.5}})
//	q := matrix.MustFromRows([][]float64{{0.3, 0.7}})
//	est, _ := shift.Run(shift.Request{
//		Methodology: shift.Vasicek,
//		Stable:      stable,
//		Observed:    []*matrix.Dense{q},
//	})
//	// est[0].Z ≈ 1.0488
//
//	go install github.com/katalvlaran/zshift/cmd/zshift@latest
package zshift
