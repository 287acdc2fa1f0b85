// Package oxdna defines nucleotide/strand types, physical constants, and
// sentinel errors for the oxdna subpackage of github.com/lamr18/origami.
package oxdna

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for oxdna operations.
var (
	// ErrBasePairs indicates a non-positive base-pair count.
	ErrBasePairs = errors.New("oxdna: base-pair count must be positive")
	// ErrZeroOrientation indicates an orientation vector of zero length.
	ErrZeroOrientation = errors.New("oxdna: orientation vector has zero length")
	// ErrCollinearFrame indicates backbone and stacking orientations that are collinear.
	ErrCollinearFrame = errors.New("oxdna: backbone and stacking orientations must not be collinear")
	// ErrBadBase indicates a sequence symbol outside the A/C/G/T alphabet.
	ErrBadBase = errors.New("oxdna: sequence contains a base outside A/C/G/T")
	// ErrEmptySystem indicates an attempt to write a System with no strands.
	ErrEmptySystem = errors.New("oxdna: system holds no strands")
)

// Physical constants of the oxDNA model, in oxDNA simulation units.
const (
	// Rise is the axial rise per base pair along the stacking axis.
	Rise = 0.3897628551303122

	// PitchBasePairs is the number of base pairs per full helical turn.
	PitchBasePairs = 10.5

	// HelixRadius is the distance from the helical axis to a nucleotide's
	// center of mass.
	HelixRadius = 0.6

	// BackboneSiteOffset locates the backbone interaction site along a1,
	// relative to the center of mass.
	BackboneSiteOffset = -0.4

	// BaseSiteOffset locates the base interaction site along a1,
	// relative to the center of mass.
	BaseSiteOffset = 0.4
)

// Nucleotide is a single oxDNA particle: a base identity plus the rigid-body
// state oxDNA expects (center of mass, a1 backbone-base versor, a3 stacking
// versor, linear and angular velocity).
type Nucleotide struct {
	// Base is one of 'A', 'C', 'G', 'T'.
	Base byte

	// Position is the center of mass.
	Position r3.Vec

	// BackboneVersor (a1) points from the base toward the backbone site.
	BackboneVersor r3.Vec

	// StackingVersor (a3) points along the local helical axis, 3′→5′.
	StackingVersor r3.Vec

	// Velocity and AngularVelocity are zero for freshly generated input.
	Velocity        r3.Vec
	AngularVelocity r3.Vec
}

// BackboneSite returns the backbone interaction site of the nucleotide.
// Complexity: O(1).
func (n Nucleotide) BackboneSite() r3.Vec {
	return r3.Add(n.Position, r3.Scale(BackboneSiteOffset, n.BackboneVersor))
}

// BaseSite returns the base interaction site of the nucleotide.
// Complexity: O(1).
func (n Nucleotide) BaseSite() r3.Vec {
	return r3.Add(n.Position, r3.Scale(BaseSiteOffset, n.BackboneVersor))
}

// Strand is an ordered run of nucleotides, listed 3′→5′.
type Strand struct {
	Nucleotides []Nucleotide
}

// Len returns the number of nucleotides in the strand.
// Complexity: O(1).
func (s Strand) Len() int { return len(s.Nucleotides) }

// Sequence returns the strand's bases as a 3′→5′ string.
// Complexity: O(n).
func (s Strand) Sequence() string {
	seq := make([]byte, len(s.Nucleotides))
	for i, n := range s.Nucleotides {
		seq[i] = n.Base
	}
	return string(seq)
}

// Complement returns the Watson–Crick partner of base b,
// or ErrBadBase for symbols outside A/C/G/T.
func Complement(b byte) (byte, error) {
	switch b {
	case 'A':
		return 'T', nil
	case 'T':
		return 'A', nil
	case 'C':
		return 'G', nil
	case 'G':
		return 'C', nil
	default:
		return 0, ErrBadBase
	}
}

// validBase reports whether b belongs to the A/C/G/T alphabet.
func validBase(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}
