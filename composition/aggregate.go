package composition

import (
	"fmt"

	"paacman_go/motif_catalog"
)

// CorpusAggregate holds every set's counts summed across the corpus
type CorpusAggregate struct {
	Records int
	Counts  map[motif_catalog.SetName]CountVector
	Matrix  DipeptideMatrix
}

// Vector returns the corpus-wide count vector for the named set
func (c CorpusAggregate) Vector(name motif_catalog.SetName) (CountVector, error) {
	v, ok := c.Counts[name]
	if !ok {
		return CountVector{}, fmt.Errorf("corpus aggregate: %w: %q", motif_catalog.ErrMotifNotFound, name)
	}
	return v, nil
}

func emptyAggregate() CorpusAggregate {
	agg := CorpusAggregate{Counts: make(map[motif_catalog.SetName]CountVector)}
	for _, set := range motif_catalog.Sets() {
		agg.Counts[set.Name] = emptyVector(set)
	}
	return agg
}

// merge returns a new aggregate with a folded in; c is left untouched
func (c CorpusAggregate) merge(a Analysis) (CorpusAggregate, error) {
	next := CorpusAggregate{
		Records: c.Records + 1,
		Counts:  make(map[motif_catalog.SetName]CountVector, len(c.Counts)),
		Matrix:  c.Matrix.Add(a.Matrix),
	}
	for name, acc := range c.Counts {
		v, err := a.Vector(name)
		if err != nil {
			return CorpusAggregate{}, err
		}
		next.Counts[name] = acc.plus(v)
	}
	return next, nil
}

// Aggregate folds per-protein analyses into corpus totals.
// The fold is order independent; an empty input is an error rather than a
// report of zeros.
func Aggregate(analyses []Analysis) (CorpusAggregate, error) {
	if len(analyses) == 0 {
		return CorpusAggregate{}, ErrEmptyCorpus
	}
	acc := emptyAggregate()
	for _, a := range analyses {
		var err error
		if acc, err = acc.merge(a); err != nil {
			return CorpusAggregate{}, err
		}
	}
	return acc, nil
}
