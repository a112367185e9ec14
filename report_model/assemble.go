package report_model

import (
	"paacman_go/composition"
	"paacman_go/motif_catalog"
)

// Assemble builds the composition table, the named dipeptide tables and the
// full dipeptide matrix table. Rows follow the order of analyses, which must
// already be corpus order.
func Assemble(analyses []composition.Analysis, agg composition.CorpusAggregate) (Report, error) {
	if len(analyses) == 0 {
		return Report{}, composition.ErrEmptyCorpus
	}

	comp, err := compositionTable(analyses, agg)
	if err != nil {
		return Report{}, err
	}

	var named []CountTable
	for _, name := range motif_catalog.NamedDipeptideSets() {
		table, err := countTable(name, analyses, agg)
		if err != nil {
			return Report{}, err
		}
		named = append(named, table)
	}

	summary, err := Summarize(analyses, agg)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Composition: comp,
		Named:       named,
		Matrix:      matrixTable(analyses, agg),
		Summary:     summary,
	}, nil
}

func countTable(name motif_catalog.SetName, analyses []composition.Analysis, agg composition.CorpusAggregate) (CountTable, error) {
	set, err := motif_catalog.Set(name)
	if err != nil {
		return CountTable{}, err
	}
	table := CountTable{
		Set:     set.Name,
		Title:   set.Title,
		Columns: motifLabels(set),
		Rows:    make([]CountRow, 0, len(analyses)),
	}
	for _, a := range analyses {
		v, err := a.Vector(name)
		if err != nil {
			return CountTable{}, err
		}
		table.Rows = append(table.Rows, countRow(a.Record.Name, v))
	}
	total, err := agg.Vector(name)
	if err != nil {
		return CountTable{}, err
	}
	table.Aggregate = countRow(TotalLabel, total)
	return table, nil
}

func compositionTable(analyses []composition.Analysis, agg composition.CorpusAggregate) (CompositionTable, error) {
	base, err := countTable(motif_catalog.Composition, analyses, agg)
	if err != nil {
		return CompositionTable{}, err
	}
	table := CompositionTable{
		CountTable: base,
		Heatmap:    make([][]float64, 0, len(analyses)),
		Scale:      DefaultHeatmapScale,
	}
	for i, a := range analyses {
		v, err := a.Vector(motif_catalog.Composition)
		if err != nil {
			return CompositionTable{}, err
		}
		pct := v.Percentages()
		table.Rows[i].Percentages = pct
		table.Heatmap = append(table.Heatmap, pct)
	}
	total, err := agg.Vector(motif_catalog.Composition)
	if err != nil {
		return CompositionTable{}, err
	}
	table.Aggregate.Percentages = total.Percentages()
	return table, nil
}

func matrixTable(analyses []composition.Analysis, agg composition.CorpusAggregate) MatrixTable {
	residues := make([]string, 0, motif_catalog.AlphabetSize)
	for _, r := range motif_catalog.Alphabet() {
		residues = append(residues, string(r))
	}
	table := MatrixTable{
		Residues: residues,
		Blocks:   make([]MatrixBlock, 0, len(analyses)),
	}
	for _, a := range analyses {
		table.Blocks = append(table.Blocks, MatrixBlock{
			Header: a.Record.Name,
			Matrix: a.Matrix,
			Total:  a.Matrix.Total(),
		})
	}
	table.Aggregate = MatrixBlock{
		Header: "Total Di-Amino Acid Counts",
		Matrix: agg.Matrix,
		Total:  agg.Matrix.Total(),
	}
	return table
}
