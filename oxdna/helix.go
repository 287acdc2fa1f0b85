// Package oxdna - double-helix generation.
//
// GenerateHelix is the single producer of strand geometry in this module.
// It is deterministic: all randomness (base padding) flows through the seed
// carried in HelixOptions, never through a hidden time-based source.
package oxdna

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// TwistPerBasePair is the rotation about the stacking axis between two
// consecutive base pairs.
const TwistPerBasePair = 2 * math.Pi / PitchBasePairs

// collinearTol bounds |a1·a3| for a frame to count as usable.
// It is a structural tolerance, independent of any caller geometry.
const collinearTol = 1e-9

// defaultSeed is the fixed seed used when callers leave Seed at zero.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// HelixOptions configures a GenerateHelix call.
//
// Fields:
//   - BasePairs           — number of base pairs to lay down (must be > 0).
//   - Sequence            — explicit 3′→5′ bases; shorter sequences are padded
//     with seeded-random bases, longer ones truncated to BasePairs.
//   - StartPosition       — helical-axis point of the first base pair.
//   - BackboneOrientation — seed a1 versor; fixes the helix's rotational frame.
//   - StackingOrientation — a3 versor; the axis the helix grows along.
//   - Double              — also emit the complementary antiparallel strand.
//   - Seed                — RNG seed for base padding; 0 selects a fixed default.
type HelixOptions struct {
	BasePairs           int
	Sequence            string
	StartPosition       r3.Vec
	BackboneOrientation r3.Vec
	StackingOrientation r3.Vec
	Double              bool
	Seed                int64
}

// HelixOption mutates HelixOptions before generation; used by callers that
// forward pass-through options (see geometry.WithHelixOptions).
type HelixOption func(*HelixOptions)

// WithDouble requests the complementary antiparallel strand as well.
func WithDouble() HelixOption {
	return func(o *HelixOptions) { o.Double = true }
}

// WithSeed fixes the RNG seed used to pad short sequences.
func WithSeed(seed int64) HelixOption {
	return func(o *HelixOptions) { o.Seed = seed }
}

// Generator adapts GenerateHelix to the geometry.HelixGenerator interface.
type Generator struct{}

// GenerateHelix implements geometry.HelixGenerator.
func (Generator) GenerateHelix(opts HelixOptions) ([]Strand, error) {
	return GenerateHelix(opts)
}

// GenerateHelix lays a B-form double helix along opts.StackingOrientation,
// starting at opts.StartPosition.
//
// Contract:
//   - opts.BasePairs > 0, else ErrBasePairs.
//   - Both orientation vectors non-zero (ErrZeroOrientation) and not
//     collinear (ErrCollinearFrame). The backbone orientation is
//     re-orthogonalized against the stacking axis, so callers may pass any
//     vector with a component off the axis.
//   - opts.Sequence drawn from A/C/G/T, else ErrBadBase.
//
// Each base pair i sits at StartPosition + i·Rise·a3; its nucleotide's center
// of mass is displaced HelixRadius along a1 rotated by i·TwistPerBasePair
// about a3. With Double, the complementary strand runs antiparallel on the
// opposite side of the axis.
//
// Complexity: O(BasePairs) time and memory.
func GenerateHelix(opts HelixOptions) ([]Strand, error) {
	if opts.BasePairs <= 0 {
		return nil, ErrBasePairs
	}

	a3, err := unitOf(opts.StackingOrientation)
	if err != nil {
		return nil, err
	}
	a1Seed, err := unitOf(opts.BackboneOrientation)
	if err != nil {
		return nil, err
	}
	if math.Abs(r3.Dot(a1Seed, a3)) > 1-collinearTol {
		return nil, ErrCollinearFrame
	}
	// Remove any axial component so a1 ⊥ a3 exactly.
	a1Seed = r3.Unit(r3.Sub(a1Seed, r3.Scale(r3.Dot(a1Seed, a3), a3)))

	seq, err := resolveSequence(opts.Sequence, opts.BasePairs, opts.Seed)
	if err != nil {
		return nil, err
	}

	forward := Strand{Nucleotides: make([]Nucleotide, opts.BasePairs)}
	for i := 0; i < opts.BasePairs; i++ {
		rot := r3.NewRotation(float64(i)*TwistPerBasePair, a3)
		a1 := rot.Rotate(a1Seed)
		axis := r3.Add(opts.StartPosition, r3.Scale(float64(i)*Rise, a3))
		forward.Nucleotides[i] = Nucleotide{
			Base:           seq[i],
			Position:       r3.Add(axis, r3.Scale(HelixRadius, a1)),
			BackboneVersor: a1,
			StackingVersor: a3,
		}
	}
	if !opts.Double {
		return []Strand{forward}, nil
	}

	// Complementary strand: antiparallel, so both the stacking versor and the
	// nucleotide order reverse, and each a1 flips to the far side of the axis.
	reverse := Strand{Nucleotides: make([]Nucleotide, opts.BasePairs)}
	for i := 0; i < opts.BasePairs; i++ {
		src := forward.Nucleotides[opts.BasePairs-1-i]
		comp, cerr := Complement(src.Base)
		if cerr != nil {
			return nil, cerr
		}
		a1 := r3.Scale(-1, src.BackboneVersor)
		axis := r3.Sub(src.Position, r3.Scale(HelixRadius, src.BackboneVersor))
		reverse.Nucleotides[i] = Nucleotide{
			Base:           comp,
			Position:       r3.Add(axis, r3.Scale(HelixRadius, a1)),
			BackboneVersor: a1,
			StackingVersor: r3.Scale(-1, a3),
		}
	}

	return []Strand{forward, reverse}, nil
}

// unitOf normalizes v, mapping the zero vector to ErrZeroOrientation.
func unitOf(v r3.Vec) (r3.Vec, error) {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, ErrZeroOrientation
	}
	return r3.Scale(1/n, v), nil
}

// resolveSequence validates seq and fits it to n bases: explicit bases win,
// missing tail positions are drawn from a seeded RNG (seed==0 selects
// defaultSeed, matching the fixed-default policy used across this module).
func resolveSequence(seq string, n int, seed int64) ([]byte, error) {
	out := make([]byte, n)
	for i := 0; i < len(seq) && i < n; i++ {
		if !validBase(seq[i]) {
			return nil, ErrBadBase
		}
		out[i] = seq[i]
	}
	if len(seq) >= n {
		return out, nil
	}

	s := seed
	if s == 0 {
		s = defaultSeed
	}
	rng := rand.New(rand.NewSource(s))
	const alphabet = "ACGT"
	for i := len(seq); i < n; i++ {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return out, nil
}
