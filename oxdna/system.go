// Package oxdna - System container and oxDNA file writers.
package oxdna

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"
)

// Default file names used by WriteOxDNA.
const (
	ConfigurationFile = "oxdna.conf"
	TopologyFile      = "oxdna.top"
)

// System is a collection of strands inside a periodic simulation box.
// It is the unit written out as an oxDNA input pair (.conf + .top).
type System struct {
	// Box is the periodic box edge lengths.
	Box r3.Vec

	// Time is the simulation timestep recorded in the configuration header;
	// zero for freshly generated input.
	Time int

	strands []Strand
}

// NewSystem creates an empty System with the given periodic box.
// Complexity: O(1).
func NewSystem(box r3.Vec) *System {
	return &System{Box: box}
}

// AddStrand appends s to the system. Empty strands are ignored.
// Complexity: O(1) amortized.
func (sys *System) AddStrand(s Strand) {
	if s.Len() == 0 {
		return
	}
	sys.strands = append(sys.strands, s)
}

// AddStrands appends every strand in order.
// Complexity: O(len(strands)).
func (sys *System) AddStrands(strands []Strand) {
	for _, s := range strands {
		sys.AddStrand(s)
	}
}

// StrandCount returns the number of strands.
// Complexity: O(1).
func (sys *System) StrandCount() int { return len(sys.strands) }

// NucleotideCount returns the total number of nucleotides over all strands.
// Complexity: O(S).
func (sys *System) NucleotideCount() int {
	total := 0
	for _, s := range sys.strands {
		total += s.Len()
	}
	return total
}

// WriteConfiguration writes the oxDNA configuration:
//
//	t = <time>
//	b = <bx> <by> <bz>
//	E = 0 0 0
//	<r> <a1> <a3> <v> <L>     (one row of 15 floats per nucleotide)
//
// Returns ErrEmptySystem if the system holds no strands.
// Complexity: O(N) where N is the nucleotide count.
func (sys *System) WriteConfiguration(w io.Writer) error {
	if len(sys.strands) == 0 {
		return ErrEmptySystem
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "t = %d\n", sys.Time)
	fmt.Fprintf(bw, "b = %.6f %.6f %.6f\n", sys.Box.X, sys.Box.Y, sys.Box.Z)
	fmt.Fprintf(bw, "E = 0 0 0\n")
	for _, s := range sys.strands {
		for _, n := range s.Nucleotides {
			fmt.Fprintf(bw, "%.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f\n",
				n.Position.X, n.Position.Y, n.Position.Z,
				n.BackboneVersor.X, n.BackboneVersor.Y, n.BackboneVersor.Z,
				n.StackingVersor.X, n.StackingVersor.Y, n.StackingVersor.Z,
				n.Velocity.X, n.Velocity.Y, n.Velocity.Z,
				n.AngularVelocity.X, n.AngularVelocity.Y, n.AngularVelocity.Z)
		}
	}
	return bw.Flush()
}

// WriteTopology writes the oxDNA topology:
//
//	<nucleotide count> <strand count>
//	<strand index> <base> <3′ neighbour> <5′ neighbour>
//
// Strand indices are 1-based; neighbour indices are global 0-based positions
// in configuration order, -1 at strand ends.
// Returns ErrEmptySystem if the system holds no strands.
// Complexity: O(N).
func (sys *System) WriteTopology(w io.Writer) error {
	if len(sys.strands) == 0 {
		return ErrEmptySystem
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", sys.NucleotideCount(), len(sys.strands))
	global := 0
	for si, s := range sys.strands {
		for i, n := range s.Nucleotides {
			prev, next := global-1, global+1
			if i == 0 {
				prev = -1
			}
			if i == s.Len()-1 {
				next = -1
			}
			fmt.Fprintf(bw, "%d %c %d %d\n", si+1, n.Base, prev, next)
			global++
		}
	}
	return bw.Flush()
}

// WriteOxDNA writes the configuration and topology files into dir,
// creating the directory if needed.
// Complexity: O(N).
func (sys *System) WriteOxDNA(dir string) error {
	if len(sys.strands) == 0 {
		return ErrEmptySystem
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("oxdna: creating %s: %w", dir, err)
	}
	if err := sys.writeFile(filepath.Join(dir, ConfigurationFile), sys.WriteConfiguration); err != nil {
		return err
	}
	return sys.writeFile(filepath.Join(dir, TopologyFile), sys.WriteTopology)
}

// writeFile funnels a writer method into a freshly created file.
func (sys *System) writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("oxdna: creating %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("oxdna: closing %s: %w", path, err)
	}
	return nil
}
