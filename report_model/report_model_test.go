package report_model

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"paacman_go/composition"
	"paacman_go/motif_catalog"
)

func assembleCorpus(t *testing.T, seqs ...[2]string) Report {
	t.Helper()
	var analyses []composition.Analysis
	for i, s := range seqs {
		a, err := composition.Analyze(composition.NewProteinRecord(s[0], s[1], i))
		if err != nil {
			t.Fatalf("Analyze(%s): %v", s[0], err)
		}
		analyses = append(analyses, a)
	}
	agg, err := composition.Aggregate(analyses)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	report, err := Assemble(analyses, agg)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return report
}

func TestAssembleCompositionScenario(t *testing.T) {
	report := assembleCorpus(t, [2]string{"P1", "AAC"}, [2]string{"P2", "CAA"})
	comp := report.Composition

	if len(comp.Rows) != 2 || comp.Rows[0].Name != "P1" || comp.Rows[1].Name != "P2" {
		t.Fatalf("unexpected rows: %+v", comp.Rows)
	}
	for _, row := range comp.Rows {
		cells := row.Cells(comp.Columns)
		if cells["A"] != 2 || cells["C"] != 1 || cells[TotalLabel] != 3 {
			t.Errorf("%s cells: A=%v C=%v Total=%v", row.Name, cells["A"], cells["C"], cells[TotalLabel])
		}
	}
	agg := comp.Aggregate.Cells(comp.Columns)
	if agg["A"] != 4 || agg["C"] != 2 || agg[TotalLabel] != 6 {
		t.Errorf("aggregate cells: A=%v C=%v Total=%v", agg["A"], agg["C"], agg[TotalLabel])
	}
	if agg[ProteinNameLabel] != TotalLabel {
		t.Errorf("aggregate row label = %v", agg[ProteinNameLabel])
	}

	pct := comp.Aggregate.PercentageCells(comp.Columns)
	if math.Abs(pct["A"].(float64)-4.0/6.0) > 1e-12 {
		t.Errorf("aggregate A share = %v", pct["A"])
	}
	if comp.Heatmap[0][motif_catalog.ResidueIndex('C')] != 1.0/3.0 {
		t.Errorf("heatmap P1/C = %v", comp.Heatmap[0][motif_catalog.ResidueIndex('C')])
	}

	header := comp.Header()
	if header[0] != ProteinNameLabel || header[1] != "A" || header[20] != "Y" || header[21] != TotalLabel {
		t.Errorf("header = %v", header)
	}
	if len(comp.RowCells()) != 3 {
		t.Errorf("RowCells length = %d, want 3", len(comp.RowCells()))
	}
}

func TestAssembleNamedTables(t *testing.T) {
	report := assembleCorpus(t, [2]string{"P1", "AACDSDT"}, [2]string{"P2", "GSGTAC"})

	wantOrder := []motif_catalog.SetName{
		motif_catalog.CysLigation, motif_catalog.AlaLigation,
		motif_catalog.Aspartimide, motif_catalog.Pseudoproline,
	}
	if len(report.Named) != len(wantOrder) {
		t.Fatalf("got %d named tables", len(report.Named))
	}
	for i, table := range report.Named {
		if table.Set != wantOrder[i] {
			t.Errorf("table %d = %s, want %s", i, table.Set, wantOrder[i])
		}
		for _, row := range table.Rows {
			if row.Percentages != nil {
				t.Errorf("%s/%s carries percentages", table.Set, row.Name)
			}
		}
		// aggregate row equals column sums
		for c := range table.Columns {
			sum := 0
			for _, row := range table.Rows {
				sum += row.Counts[c]
			}
			if table.Aggregate.Counts[c] != sum {
				t.Errorf("%s %s: aggregate %d, rows %d", table.Set, table.Columns[c], table.Aggregate.Counts[c], sum)
			}
		}
	}

	cys := report.Named[0]
	if cys.Rows[0].Cells(cys.Columns)["AC"] != 1 || cys.Aggregate.Cells(cys.Columns)["AC"] != 2 {
		t.Errorf("AC counts: %v / %v", cys.Rows[0].Cells(cys.Columns)["AC"], cys.Aggregate.Cells(cys.Columns)["AC"])
	}
	asp := report.Named[2]
	if asp.Rows[0].Total != 2 { // DS, DT
		t.Errorf("P1 aspartimide total = %d, want 2", asp.Rows[0].Total)
	}
	ps := report.Named[3]
	if len(ps.Columns) != 32 || ps.Rows[1].Total != 2 { // GS, GT
		t.Errorf("pseudoproline columns=%d, P2 total=%d", len(ps.Columns), ps.Rows[1].Total)
	}
}

func TestAssembleMatrixTable(t *testing.T) {
	report := assembleCorpus(t, [2]string{"P1", "AC"}, [2]string{"P2", "ACA"})
	m := report.Matrix

	if len(m.Blocks) != 2 || m.Blocks[0].Header != "P1" || m.Blocks[1].Header != "P2" {
		t.Fatalf("unexpected blocks: %d", len(m.Blocks))
	}
	a, c := motif_catalog.ResidueIndex('A'), motif_catalog.ResidueIndex('C')
	// rows are the second residue, columns the first: "AC" sits at row C, column A
	if m.Blocks[0].Cell(c, a) != 1 || m.Blocks[0].Cell(a, c) != 0 {
		t.Errorf("P1 orientation wrong: (C,A)=%d (A,C)=%d", m.Blocks[0].Cell(c, a), m.Blocks[0].Cell(a, c))
	}
	if m.Aggregate.Cell(c, a) != 2 || m.Aggregate.Cell(a, c) != 1 || m.Aggregate.Total != 3 {
		t.Errorf("aggregate block: AC=%d CA=%d total=%d", m.Aggregate.Cell(c, a), m.Aggregate.Cell(a, c), m.Aggregate.Total)
	}
	if len(m.Residues) != 20 || m.Residues[0] != "A" || m.Residues[19] != "Y" {
		t.Errorf("Residues = %v", m.Residues)
	}
}

func TestAssembleEmpty(t *testing.T) {
	_, err := Assemble(nil, composition.CorpusAggregate{})
	if !errors.Is(err, composition.ErrEmptyCorpus) {
		t.Fatalf("error = %v, want ErrEmptyCorpus", err)
	}
}

func TestAssembleMissingSetPropagates(t *testing.T) {
	a, err := composition.Analyze(composition.NewProteinRecord("P1", "AAC", 0))
	if err != nil {
		t.Fatal(err)
	}
	agg, err := composition.Aggregate([]composition.Analysis{a})
	if err != nil {
		t.Fatal(err)
	}
	delete(a.Counts, motif_catalog.Aspartimide)
	if _, err := Assemble([]composition.Analysis{a}, agg); !errors.Is(err, motif_catalog.ErrMotifNotFound) {
		t.Fatalf("error = %v, want ErrMotifNotFound", err)
	}
}

func TestSummarize(t *testing.T) {
	report := assembleCorpus(t, [2]string{"P1", "AAC"}, [2]string{"P2", "CAAXX"}, [2]string{"P3", "AAAAAA"})
	s := report.Summary

	if s.Proteins != 3 || s.Residues != 12 {
		t.Errorf("Proteins=%d Residues=%d", s.Proteins, s.Residues)
	}
	if s.MinLength != 3 || s.MaxLength != 6 || math.Abs(s.MeanLength-4) > 1e-12 {
		t.Errorf("lengths min=%d max=%d mean=%v", s.MinLength, s.MaxLength, s.MeanLength)
	}
	if s.MostCommon != "A" {
		t.Errorf("MostCommon = %s", s.MostCommon)
	}
	if s.NonCanonical['X'] != 2 {
		t.Errorf("NonCanonical = %v", s.NonCanonical)
	}
	if s.SiteTotals[motif_catalog.AlaLigation] != 1+2+5 { // AA; CA, AA; 5x AA
		t.Errorf("AlaLigation total = %d", s.SiteTotals[motif_catalog.AlaLigation])
	}
	alanine := s.PerResidue[motif_catalog.ResidueIndex('A')]
	if alanine.Max != 1 || math.Abs(alanine.Min-2.0/3.0) > 1e-12 {
		t.Errorf("alanine share range = [%v, %v]", alanine.Min, alanine.Max)
	}

	single := assembleCorpus(t, [2]string{"P1", "AAC"}).Summary
	if single.StdDevLength != 0 || math.IsNaN(single.PerResidue[0].StdDev) {
		t.Errorf("single protein deviation = %v / %v", single.StdDevLength, single.PerResidue[0].StdDev)
	}
}

func TestHeatmapScale(t *testing.T) {
	h := DefaultHeatmapScale
	tests := []struct {
		v    float64
		want color.RGBA
	}{
		{-0.5, h.MinColor},
		{0, h.MinColor},
		{0.05, h.MidColor},
		{0.10, h.MaxColor},
		{0.75, h.MaxColor},
		{0.025, color.RGBA{R: 0x80, G: 0x80, B: 0xD5, A: 0xFF}},
	}
	for _, tt := range tests {
		if got := h.Color(tt.v); got != tt.want {
			t.Errorf("Color(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := Hex(h.MaxColor); got != "#AA0000" {
		t.Errorf("Hex = %s", got)
	}
	if h.Clamp(0.2) != 0.10 || h.Clamp(-1) != 0 || h.Clamp(0.07) != 0.07 {
		t.Error("Clamp out of range")
	}
}
