// Package config loads estimation requests from YAML and process settings
// from the environment.
//
// A request file names the methodology, optional search parameters and the
// matrices. With "stable: input" the first matrix is the stable baseline and
// the rest are observed; with "stable: average" (the default) every matrix is
// observed and the baseline is their elementwise mean.
package config
