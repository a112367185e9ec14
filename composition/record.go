package composition

import (
	"strings"
	"unicode"
)

// ProteinRecord is one named protein sequence of the corpus.
// Order is the record's natural-sort position and fixes its row in every table.
type ProteinRecord struct {
	Name     string
	Sequence string // Uppercase, no whitespace
	Order    int
	Headers  int // Header lines seen by the extractor; 0 when not reported
}

// NewProteinRecord normalizes a raw residue string (case, whitespace) into a record
func NewProteinRecord(name, sequence string, order int) ProteinRecord {
	return ProteinRecord{
		Name:     name,
		Sequence: normalizeSequence(sequence),
		Order:    order,
		Headers:  1,
	}
}

// Valid reports whether the extractor saw at most one header for this record
func (r ProteinRecord) Valid() bool {
	return r.Headers <= 1
}

func normalizeSequence(seq string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, seq)
}
