package config

import "errors"

var (
	// ErrSettings indicates an environment value outside its allowed set.
	ErrSettings = errors.New("config: invalid settings")

	// ErrNoMatrices indicates a request file without matrices.
	ErrNoMatrices = errors.New("config: no matrices")

	// ErrStableSource indicates an unsupported "stable" value.
	ErrStableSource = errors.New("config: stable must be input or average")

	// ErrBounds indicates a "bounds" list that is not exactly [lower, upper].
	ErrBounds = errors.New("config: bounds must have two values")

	// ErrNoObservedAfterStable indicates "stable: input" with a single matrix.
	ErrNoObservedAfterStable = errors.New("config: stable input needs at least one observed matrix")
)
