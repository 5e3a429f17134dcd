// Package shift estimates a scalar systemic shift Z explaining how observed
// transition (migration) matrices diverge from a baseline ("stable") matrix.
//
// Two interchangeable models are supported, selected by a Methodology tag:
//
//   - Logit: a uniform shock in log-odds space. Every baseline cell p is
//     moved to σ(logit(p) + Z) and compared with the observed cell.
//   - Vasicek: a single-factor latent-variable model. Each baseline row
//     defines normal-quantile bin boundaries; the systemic factor Z with
//     asset correlation ρ moves the latent variable, giving expected
//     probabilities Φ(adjB) − Φ(adjA).
//
// For each observed matrix Z is fitted by golden-section search on the sum
// of squared prediction errors (see package optimize).
//
// Pipeline:
//
//	validate (row sums, shapes) → baseline (supplied or averaged)
//	→ bin boundaries once (Vasicek) → per observed matrix: bind objective,
//	minimize → ordered []Estimate
//
// The pipeline is all-or-nothing: any validation error is returned before
// the first objective evaluation and no partial results are produced.
//
// Concurrency: every function is pure and holds no package-level mutable
// state, so independent requests may run in parallel (see RunBatch).
//
// Limitation: both objectives are assumed unimodal on the search bracket.
// This is not verified; a multimodal objective yields a local minimum.
package shift
