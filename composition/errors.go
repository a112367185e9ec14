package composition

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSequence matches every *MalformedSequenceError
	ErrMalformedSequence = errors.New("malformed sequence")

	// ErrEmptyCorpus is returned when there are no protein records to analyze
	ErrEmptyCorpus = errors.New("empty corpus: no protein records to analyze")
)

// MalformedSequenceError reports a source unit that did not yield exactly one
// FASTA record.
type MalformedSequenceError struct {
	Name    string // Protein (or file) name
	Headers int    // Number of '>' header lines seen
}

func (e *MalformedSequenceError) Error() string {
	if e.Headers == 0 {
		return fmt.Sprintf("%s: no FASTA header found", e.Name)
	}
	return fmt.Sprintf("%s contains %d FASTA records; only one sequence per file is supported", e.Name, e.Headers)
}

func (e *MalformedSequenceError) Is(target error) bool {
	return target == ErrMalformedSequence
}
