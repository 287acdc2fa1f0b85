// Package blockdna defines options, ranges, and sentinel errors for the
// blockdna subpackage of github.com/lamr18/origami.
package blockdna

import (
	"errors"
	"log/slog"

	"github.com/lamr18/origami/geometry"
	"github.com/lamr18/origami/oxdna"
)

// Sentinel errors for blockdna operations.
var (
	// ErrBadLength indicates a non-positive total or segment length.
	ErrBadLength = errors.New("blockdna: lengths must be positive")
	// ErrIndivisible indicates total is not a whole multiple of ds+ss.
	ErrIndivisible = errors.New("blockdna: total length not divisible by ds+ss unit")
	// ErrBadRange indicates a sweep range with a non-positive step.
	ErrBadRange = errors.New("blockdna: range step must be positive")
)

// config collects GenerateSystem settings.
type config struct {
	gen    geometry.HelixGenerator
	seed   int64
	logger *slog.Logger
}

// Option configures GenerateSystem.
type Option func(*config)

// WithGenerator swaps the helix generator (oxdna.Generator by default).
func WithGenerator(gen geometry.HelixGenerator) Option {
	return func(c *config) { c.gen = gen }
}

// WithSeed fixes the base seed for random sequence content; each segment
// derives its own stream from it, so whole constructs are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger routes progress and warnings to logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// defaultConfig applies the fixed defaults before options run.
func defaultConfig() config {
	return config{
		gen:    oxdna.Generator{},
		seed:   1,
		logger: slog.Default(),
	}
}

// Range is an inclusive arithmetic progression Start, Start+Step, …, ≤ Stop.
type Range struct {
	Start, Step, Stop int
}

// Values expands the range. A Stop below Start yields an empty slice;
// a non-positive Step fails with ErrBadRange.
// Complexity: O((Stop-Start)/Step).
func (r Range) Values() ([]int, error) {
	if r.Step <= 0 {
		return nil, ErrBadRange
	}
	var out []int
	for v := r.Start; v <= r.Stop; v += r.Step {
		out = append(out, v)
	}
	return out, nil
}

// SweepOptions configures a Sweep run.
//
// Total, Double, and Single are the three length ranges, in base pairs.
// OutputPrefix, when non-empty, is the directory under which each generated
// system is written as a numbered oxDNA folder; leave it empty to only count.
type SweepOptions struct {
	Total  Range
	Double Range
	Single Range

	OutputPrefix string

	// Generation settings forwarded to GenerateSystem.
	Options []Option
}
