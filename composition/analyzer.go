// Package composition counts residues and dipeptide motifs per protein and
// folds the per-protein results into corpus-wide totals.
package composition

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"paacman_go/motif_catalog"
)

const alphabetSize = motif_catalog.AlphabetSize

// CountVector holds one count per motif of a set, in catalog order
type CountVector struct {
	Set    motif_catalog.SetName
	Motifs []motif_catalog.Motif
	Counts []int
}

// Total is the sum of all counts in the vector
func (v CountVector) Total() int {
	total := 0
	for _, c := range v.Counts {
		total += c
	}
	return total
}

// Count returns the count recorded for motif, or 0 if the motif is not in the set
func (v CountVector) Count(m motif_catalog.Motif) int {
	for i, candidate := range v.Motifs {
		if candidate == m {
			return v.Counts[i]
		}
	}
	return 0
}

// Percentages returns count/total per motif as fractions in [0,1].
// All values are zero when the total is zero.
func (v CountVector) Percentages() []float64 {
	pct := make([]float64, len(v.Counts))
	for i, c := range v.Counts {
		pct[i] = float64(c)
	}
	total := floats.Sum(pct)
	if total == 0 {
		return pct
	}
	floats.Scale(1/total, pct)
	return pct
}

// plus returns the elementwise sum of two vectors over the same set
func (v CountVector) plus(o CountVector) CountVector {
	sum := CountVector{Set: v.Set, Motifs: v.Motifs, Counts: make([]int, len(v.Counts))}
	copy(sum.Counts, v.Counts)
	for i := range o.Counts {
		sum.Counts[i] += o.Counts[i]
	}
	return sum
}

func emptyVector(set motif_catalog.MotifSet) CountVector {
	return CountVector{Set: set.Name, Motifs: set.Motifs, Counts: make([]int, set.Size())}
}

// DipeptideMatrix counts every adjacent residue pair, indexed [first][second]
type DipeptideMatrix [alphabetSize][alphabetSize]int

// At returns the count for the dipeptide first+second; non-canonical residues yield 0
func (m DipeptideMatrix) At(first, second byte) int {
	i, j := motif_catalog.ResidueIndex(first), motif_catalog.ResidueIndex(second)
	if i < 0 || j < 0 {
		return 0
	}
	return m[i][j]
}

// Total sums every cell
func (m DipeptideMatrix) Total() int {
	total := 0
	for i := range m {
		for j := range m[i] {
			total += m[i][j]
		}
	}
	return total
}

// Add returns the elementwise sum of m and o
func (m DipeptideMatrix) Add(o DipeptideMatrix) DipeptideMatrix {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

// Dense returns the matrix as a gonum dense matrix (rows = first residue)
func (m DipeptideMatrix) Dense() *mat.Dense {
	data := make([]float64, 0, alphabetSize*alphabetSize)
	for i := range m {
		for j := range m[i] {
			data = append(data, float64(m[i][j]))
		}
	}
	return mat.NewDense(alphabetSize, alphabetSize, data)
}

// matrixFromVector reshapes a row-major AllDipeptides vector into a matrix
func matrixFromVector(v CountVector) DipeptideMatrix {
	var m DipeptideMatrix
	for k, c := range v.Counts {
		m[k/alphabetSize][k%alphabetSize] = c
	}
	return m
}

// Analysis is the per-protein result of Analyze
type Analysis struct {
	Record       ProteinRecord
	Counts       map[motif_catalog.SetName]CountVector
	Matrix       DipeptideMatrix
	NonCanonical map[rune]int // Letters outside the canonical alphabet; never part of any total
}

// Vector returns the count vector for the named set
func (a Analysis) Vector(name motif_catalog.SetName) (CountVector, error) {
	v, ok := a.Counts[name]
	if !ok {
		return CountVector{}, fmt.Errorf("%s: %w: %q", a.Record.Name, motif_catalog.ErrMotifNotFound, name)
	}
	return v, nil
}

// Analyze counts every catalog motif set for one protein.
// Composition comes from the raw residue tally so its total covers exactly the
// canonical residues; the dipeptide sets use overlapping occurrence counts.
func Analyze(record ProteinRecord) (Analysis, error) {
	if !record.Valid() {
		return Analysis{}, &MalformedSequenceError{Name: record.Name, Headers: record.Headers}
	}

	residues, nonCanonical := ResidueComposition(record.Sequence)
	analysis := Analysis{
		Record:       record,
		Counts:       make(map[motif_catalog.SetName]CountVector),
		NonCanonical: nonCanonical,
	}

	for _, set := range motif_catalog.Sets() {
		v := emptyVector(set)
		if set.Name == motif_catalog.Composition {
			copy(v.Counts, residues[:])
		} else {
			for i, m := range set.Motifs {
				v.Counts[i] = CountOccurrences(record.Sequence, string(m))
			}
		}
		analysis.Counts[set.Name] = v
	}

	all, err := analysis.Vector(motif_catalog.AllDipeptides)
	if err != nil {
		return Analysis{}, err
	}
	analysis.Matrix = matrixFromVector(all)
	return analysis, nil
}
