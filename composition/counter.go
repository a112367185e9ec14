package composition

import (
	"strings"
	"unicode"

	"paacman_go/motif_catalog"
)

// CountOccurrences returns the number of positions at which motif occurs in
// sequence, overlapping matches included ("AA" occurs twice in "AAA").
// Each search resumes one position after the start of the previous match.
func CountOccurrences(sequence, motif string) int {
	if motif == "" || len(motif) > len(sequence) {
		return 0
	}
	count := 0
	start := 0
	for {
		i := strings.Index(sequence[start:], motif)
		if i < 0 {
			return count
		}
		count++
		start += i + 1
		if start > len(sequence)-len(motif) {
			return count
		}
	}
}

// ResidueComposition tallies the letters of sequence in a single pass.
// Canonical residues land in the returned array (catalog order); any other
// letter is tallied in nonCanonical. Non-letters are ignored.
func ResidueComposition(sequence string) (canonical [motif_catalog.AlphabetSize]int, nonCanonical map[rune]int) {
	nonCanonical = make(map[rune]int)
	for _, r := range sequence {
		if !unicode.IsLetter(r) {
			continue
		}
		upper := unicode.ToUpper(r)
		if motif_catalog.IsCanonical(upper) {
			canonical[motif_catalog.ResidueIndex(byte(upper))]++
		} else {
			nonCanonical[upper]++
		}
	}
	return canonical, nonCanonical
}
