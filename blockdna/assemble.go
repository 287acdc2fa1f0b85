package blockdna

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lamr18/origami/geometry"
	"github.com/lamr18/origami/oxdna"
)

// minBoxEdge keeps very short constructs inside a box large enough for
// periodic-image safety.
const minBoxEdge = 20.0

// GenerateSystem builds one block-DNA construct of total base pairs laid
// along x̂, as total/(ds+ss) repeating units of a ds-bp duplex followed by an
// ss-nt single-stranded segment.
//
// Contract:
//   - total, ds, ss > 0, else ErrBadLength;
//   - total must divide evenly into (ds+ss) units, else ErrIndivisible.
//
// Consecutive segments share their joint node in one geometry.Arena, so each
// interior node ends up with both direction vectors assigned and a defined
// interior angle (π for this straight construct).
//
// Complexity: O(total) time and memory.
func GenerateSystem(total, ds, ss int, opts ...Option) (*oxdna.System, error) {
	if total <= 0 || ds <= 0 || ss <= 0 {
		return nil, ErrBadLength
	}
	unit := ds + ss
	if total%unit != 0 {
		return nil, ErrIndivisible
	}
	units := total / unit

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	edge := float64(total) / geometry.NucleotidesPerUnit * 2
	if edge < minBoxEdge {
		edge = minBoxEdge
	}
	sys := oxdna.NewSystem(r3.Vec{X: edge, Y: edge, Z: edge})

	arena := geometry.NewArena()
	prev := arena.AddNode(r3.Vec{})
	x := 0.0
	segment := 0
	for u := 0; u < units; u++ {
		for _, seg := range []struct {
			bp     int
			double bool
		}{{ds, true}, {ss, false}} {
			// Place the far node so the edge's NTLength floors back to
			// exactly seg.bp.
			length := (float64(seg.bp) + 0.5) / geometry.NucleotidesPerUnit
			x += length
			next := arena.AddNode(r3.Vec{X: x})

			e, err := geometry.NewEdgeBetween(arena, prev, next)
			if err != nil {
				return nil, fmt.Errorf("blockdna: unit %d: %w", u, err)
			}

			helix := []oxdna.HelixOption{oxdna.WithSeed(cfg.seed + int64(segment))}
			if seg.double {
				helix = append(helix, oxdna.WithDouble())
			}
			strands, err := e.Strand(cfg.gen,
				geometry.WithLogger(cfg.logger),
				geometry.WithHelixOptions(helix...))
			if err != nil {
				return nil, fmt.Errorf("blockdna: unit %d: %w", u, err)
			}
			sys.AddStrands(strands)

			prev = next
			segment++
		}
	}

	return sys, nil
}
