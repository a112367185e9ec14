// Package report_model arranges per-protein analyses and corpus totals into the
// logical tables of the Paacman report. It only shapes data, counting happens
// in package composition.
package report_model

import (
	"paacman_go/composition"
	"paacman_go/motif_catalog"
)

// Column and row labels shared by every table
const (
	ProteinNameLabel = "Protein Name"
	TotalLabel       = "Total"
	PercentageLabel  = "Percentage"
)

// CountRow is one protein (or the aggregate) in a count table
type CountRow struct {
	Name        string
	Counts      []int
	Total       int
	Percentages []float64 // Only set in the composition table
}

// Cells maps column labels to values: the protein name, one count per motif
// and the row total.
func (r CountRow) Cells(columns []string) map[string]any {
	cells := make(map[string]any, len(columns)+2)
	cells[ProteinNameLabel] = r.Name
	for i, col := range columns {
		cells[col] = r.Counts[i]
	}
	cells[TotalLabel] = r.Total
	return cells
}

// PercentageCells maps column labels to the row's fractions in [0,1]
func (r CountRow) PercentageCells(columns []string) map[string]any {
	cells := make(map[string]any, len(columns)+1)
	cells[ProteinNameLabel] = r.Name
	for i, col := range columns {
		if i < len(r.Percentages) {
			cells[col] = r.Percentages[i]
		}
	}
	return cells
}

// CountTable has one row per protein in corpus order plus an aggregate row
type CountTable struct {
	Set       motif_catalog.SetName
	Title     string
	Columns   []string
	Rows      []CountRow
	Aggregate CountRow
}

// Header returns the table's column labels in render order
func (t CountTable) Header() []string {
	header := make([]string, 0, len(t.Columns)+2)
	header = append(header, ProteinNameLabel)
	header = append(header, t.Columns...)
	return append(header, TotalLabel)
}

// RowCells returns every protein row followed by the aggregate row
func (t CountTable) RowCells() []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows)+1)
	for _, r := range t.Rows {
		out = append(out, r.Cells(t.Columns))
	}
	return append(out, t.Aggregate.Cells(t.Columns))
}

// CompositionTable is the single-residue table with its derived heatmap
type CompositionTable struct {
	CountTable
	Heatmap [][]float64 // [protein][residue] percentage, same order as Rows
	Scale   HeatmapScale
}

// MatrixBlock is one 20x20 dipeptide grid with a caption
type MatrixBlock struct {
	Header string
	Matrix composition.DipeptideMatrix
	Total  int
}

// Cell returns the count at (row, col): rows are the second residue, columns the first
func (b MatrixBlock) Cell(row, col int) int {
	return b.Matrix[col][row]
}

// MatrixTable holds one block per protein followed by the corpus block
type MatrixTable struct {
	Residues  []string // Axis labels, used for both rows and columns
	Blocks    []MatrixBlock
	Aggregate MatrixBlock
}

// Report is everything the renderers need
type Report struct {
	Composition CompositionTable
	Named       []CountTable
	Matrix      MatrixTable
	Summary     Summary
}

func motifLabels(set motif_catalog.MotifSet) []string {
	labels := make([]string, len(set.Motifs))
	for i, m := range set.Motifs {
		labels[i] = string(m)
	}
	return labels
}

func countRow(name string, v composition.CountVector) CountRow {
	counts := make([]int, len(v.Counts))
	copy(counts, v.Counts)
	return CountRow{Name: name, Counts: counts, Total: v.Total()}
}

// BaseName is the file stem of every artifact written for a corpus folder
func BaseName(folder string) string {
	return "AA Analysis for " + folder
}

// Report sections, in output order
const (
	CompositionSection = "AA Composition"
	SitesSection       = "CPS Di-AA Composition"
	MatrixSection      = "Total Di-AA Composition"
)
