// Package motif_catalog holds the static motif definitions analyzed by Paacman:
// the canonical amino acid alphabet and the fixed, ordered motif sets.
// The order of every set is significant, it is the column order of every report table.
package motif_catalog

import (
	"errors"
	"fmt"
)

// Motif is a residue string over the canonical alphabet (length 1 or 2)
type Motif string

// SetName identifies a motif set in the catalog
type SetName string

const (
	Composition   SetName = "Composition"
	CysLigation   SetName = "CysLigation"
	AlaLigation   SetName = "AlaLigation"
	Aspartimide   SetName = "Aspartimide"
	Pseudoproline SetName = "Pseudoproline"
	AllDipeptides SetName = "AllDipeptides"
)

// ErrMotifNotFound reports a set reference that does not resolve in the catalog.
// It is a programming error, never a data error.
var ErrMotifNotFound = errors.New("motif set not found in catalog")

// MotifSet is an ordered, named collection of motifs with fixed membership
type MotifSet struct {
	Name   SetName
	Title  string // Section heading used by the report renderers
	Motifs []Motif
}

// Size returns the number of motifs in the set
func (s MotifSet) Size() int {
	return len(s.Motifs)
}

// IndexOf returns the column position of motif within the set, or -1
func (s MotifSet) IndexOf(m Motif) int {
	for i, candidate := range s.Motifs {
		if candidate == m {
			return i
		}
	}
	return -1
}

// Canonical 20-letter amino acid alphabet (excluding B, J, O, U, X, Z)
const canonicalResidues = "ACDEFGHIKLMNPQRSTVWY"

// AlphabetSize is the number of canonical residues
const AlphabetSize = len(canonicalResidues)

// Residues that may precede S/T in a pseudoproline dipeptide
const pseudoprolineLeaders = "ADEFGHIKLMNQRVWY"

var residueIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(canonicalResidues); i++ {
		idx[canonicalResidues[i]] = int8(i)
	}
	return idx
}()

var catalog = []MotifSet{
	{Name: Composition, Title: "Amino Acids", Motifs: defineMerPairs(1)},
	{Name: CysLigation, Title: "Cysteine Ligation Sites", Motifs: withSuffix('C')},
	{Name: AlaLigation, Title: "Alanine Ligation Sites", Motifs: withSuffix('A')},
	{Name: Aspartimide, Title: "Possible Aspartimides", Motifs: withPrefix('D')},
	{Name: Pseudoproline, Title: "Possible Pseudoprolines", Motifs: pseudoprolines()},
	{Name: AllDipeptides, Title: "Total Di-AA Composition", Motifs: defineMerPairs(2)},
}

// defineMerPairs returns every k-length residue string over the canonical
// alphabet, ordered by first residue, then second, and so on.
func defineMerPairs(k int) []Motif {
	var mers []Motif
	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		if depth == 0 {
			mers = append(mers, Motif(prefix))
			return
		}
		for i := 0; i < len(canonicalResidues); i++ {
			build(prefix+string(canonicalResidues[i]), depth-1)
		}
	}
	build("", k)
	return mers
}

// {X}+suffix for each canonical residue X
func withSuffix(suffix byte) []Motif {
	motifs := make([]Motif, 0, len(canonicalResidues))
	for i := 0; i < len(canonicalResidues); i++ {
		motifs = append(motifs, Motif([]byte{canonicalResidues[i], suffix}))
	}
	return motifs
}

// prefix+{X} for each canonical residue X
func withPrefix(prefix byte) []Motif {
	motifs := make([]Motif, 0, len(canonicalResidues))
	for i := 0; i < len(canonicalResidues); i++ {
		motifs = append(motifs, Motif([]byte{prefix, canonicalResidues[i]}))
	}
	return motifs
}

func pseudoprolines() []Motif {
	motifs := make([]Motif, 0, 2*len(pseudoprolineLeaders))
	for i := 0; i < len(pseudoprolineLeaders); i++ {
		lead := pseudoprolineLeaders[i]
		motifs = append(motifs, Motif([]byte{lead, 'S'}), Motif([]byte{lead, 'T'}))
	}
	return motifs
}

// Alphabet returns the canonical residues in catalog order
func Alphabet() []byte {
	return []byte(canonicalResidues)
}

// ResidueIndex returns the position of residue in the alphabet, or -1 for
// anything non-canonical (including lowercase letters).
func ResidueIndex(residue byte) int {
	return int(residueIndex[residue])
}

// IsCanonical reports whether r is one of the 20 canonical residues
func IsCanonical(r rune) bool {
	return r >= 0 && r < 256 && residueIndex[r] >= 0
}

// Set looks up a motif set by name. The returned set owns a private copy of
// its motifs.
func Set(name SetName) (MotifSet, error) {
	for _, s := range catalog {
		if s.Name == name {
			return clone(s), nil
		}
	}
	return MotifSet{}, fmt.Errorf("%w: %q", ErrMotifNotFound, name)
}

// MustSet is Set for names known at compile time; it panics on a miss.
func MustSet(name SetName) MotifSet {
	s, err := Set(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Sets returns every motif set in declared order
func Sets() []MotifSet {
	out := make([]MotifSet, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, clone(s))
	}
	return out
}

// NamedDipeptideSets lists the dipeptide sets reported as named tables, in
// report order.
func NamedDipeptideSets() []SetName {
	return []SetName{CysLigation, AlaLigation, Aspartimide, Pseudoproline}
}

func clone(s MotifSet) MotifSet {
	motifs := make([]Motif, len(s.Motifs))
	copy(motifs, s.Motifs)
	s.Motifs = motifs
	return s
}
