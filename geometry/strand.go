// Package geometry - strand generation: the bridge from edge geometry to the
// helix generator.
package geometry

import (
	"log/slog"

	"github.com/lamr18/origami/oxdna"
)

// HelixGenerator produces strand geometry from a start position and an
// orientation frame. oxdna.Generator is the production implementation; tests
// inject fakes to observe the parameters an Edge hands over.
type HelixGenerator interface {
	GenerateHelix(oxdna.HelixOptions) ([]oxdna.Strand, error)
}

// strandConfig collects per-call Strand settings.
type strandConfig struct {
	sequence string
	logger   *slog.Logger
	helix    []oxdna.HelixOption
}

// StrandOption configures a single Edge.Strand call.
type StrandOption func(*strandConfig)

// WithSequence supplies explicit 3′→5′ bases. The base-pair count then comes
// from the sequence length instead of the edge's NTLength.
func WithSequence(sequence string) StrandOption {
	return func(c *strandConfig) { c.sequence = sequence }
}

// WithLogger routes the non-fatal sequence-capacity warning to logger
// instead of slog.Default().
func WithLogger(logger *slog.Logger) StrandOption {
	return func(c *strandConfig) { c.logger = logger }
}

// WithHelixOptions forwards generator-level options (e.g. oxdna.WithDouble)
// untouched through to the HelixGenerator call.
func WithHelixOptions(opts ...oxdna.HelixOption) StrandOption {
	return func(c *strandConfig) { c.helix = append(c.helix, opts...) }
}

// Strand asks gen for the edge's strand geometry.
//
// The base-pair count is the sequence length when WithSequence was given,
// otherwise the edge's NTLength. A sequence at least as long as NTLength
// means the edge is shorter than the sequence requires; that is reported as
// a warning and generation proceeds — downstream generation may still
// succeed with partial helix coverage.
//
// The generator receives the 3′ node position as the start, the
// perpendicular vector as the backbone reference orientation, and the unit
// vector as the base-stacking orientation. Generator errors (including the
// vertical-edge zero perpendicular) propagate as-is.
//
// Complexity: O(base pairs), dominated by the generator.
func (e *Edge) Strand(gen HelixGenerator, opts ...StrandOption) ([]oxdna.Strand, error) {
	cfg := strandConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	basePairs := e.NTLength()
	if cfg.sequence != "" {
		basePairs = len(cfg.sequence)
		if basePairs >= e.NTLength() {
			cfg.logger.Warn("sequence longer than edge capacity",
				"sequence_nt", basePairs,
				"edge_nt", e.NTLength())
		}
	}

	unit, err := e.UnitVector()
	if err != nil {
		return nil, err
	}
	perp, err := e.PerpVector()
	if err != nil {
		return nil, err
	}
	start, err := e.arena.Position(e.v0)
	if err != nil {
		return nil, err
	}

	helixOpts := oxdna.HelixOptions{
		BasePairs:           basePairs,
		Sequence:            cfg.sequence,
		StartPosition:       start,
		BackboneOrientation: perp,
		StackingOrientation: unit,
	}
	for _, opt := range cfg.helix {
		opt(&helixOpts)
	}

	return gen.GenerateHelix(helixOpts)
}
