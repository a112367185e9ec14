package report_model

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"paacman_go/composition"
	"paacman_go/motif_catalog"
)

// ResidueSummary describes how one residue's share varies across proteins
type ResidueSummary struct {
	Residue string
	Corpus  float64 // Share of the residue in the pooled corpus
	Mean    float64 // Mean per-protein share
	StdDev  float64
	Min     float64
	Max     float64
}

// Summary is the console overview of a corpus
type Summary struct {
	Proteins     int
	Residues     int // Canonical residues across the corpus
	MeanLength   float64
	StdDevLength float64
	MinLength    int
	MaxLength    int
	MostCommon   string
	LeastCommon  string
	PerResidue   []ResidueSummary
	SiteTotals   map[motif_catalog.SetName]int // Corpus total per named dipeptide set
	NonCanonical map[rune]int
}

// Summarize computes descriptive statistics over the per-protein composition
func Summarize(analyses []composition.Analysis, agg composition.CorpusAggregate) (Summary, error) {
	if len(analyses) == 0 {
		return Summary{}, composition.ErrEmptyCorpus
	}
	comp, err := agg.Vector(motif_catalog.Composition)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Proteins:     len(analyses),
		Residues:     comp.Total(),
		SiteTotals:   make(map[motif_catalog.SetName]int),
		NonCanonical: make(map[rune]int),
	}

	lengths := make([]float64, len(analyses))
	shares := make([][]float64, motif_catalog.AlphabetSize) // [residue][protein]
	for i := range shares {
		shares[i] = make([]float64, len(analyses))
	}
	for p, a := range analyses {
		v, err := a.Vector(motif_catalog.Composition)
		if err != nil {
			return Summary{}, err
		}
		lengths[p] = float64(v.Total())
		for r, pct := range v.Percentages() {
			shares[r][p] = pct
		}
		for r, n := range a.NonCanonical {
			s.NonCanonical[r] += n
		}
	}

	s.MeanLength, s.StdDevLength = meanStdDev(lengths)
	s.MinLength, s.MaxLength = int(floats.Min(lengths)), int(floats.Max(lengths))

	corpus := comp.Percentages()
	for r, label := range comp.Motifs {
		mean, sd := meanStdDev(shares[r])
		s.PerResidue = append(s.PerResidue, ResidueSummary{
			Residue: string(label),
			Corpus:  corpus[r],
			Mean:    mean,
			StdDev:  sd,
			Min:     floats.Min(shares[r]),
			Max:     floats.Max(shares[r]),
		})
	}
	if s.Residues > 0 {
		s.MostCommon = string(comp.Motifs[floats.MaxIdx(corpus)])
		s.LeastCommon = string(comp.Motifs[floats.MinIdx(corpus)])
	}

	for _, name := range motif_catalog.NamedDipeptideSets() {
		v, err := agg.Vector(name)
		if err != nil {
			return Summary{}, err
		}
		s.SiteTotals[name] = v.Total()
	}
	return s, nil
}

// meanStdDev guards the single-sample case, where the sample deviation is undefined
func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
