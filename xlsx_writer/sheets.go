package xlsx_writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"paacman_go/report_model"
)

const (
	heatmapTitle = "Amino Acid Percentage Heatmap"
	legendTitle  = "Heatmap Legend"
	firstAxis    = "1st Amino Acid"
	secondAxis   = "2nd Amino Acid"

	matrixStride = 24 // Rows per dipeptide block, including the blank separator
)

func writeComposition(f *excelize.File, st styles, table report_model.CompositionTable) error {
	s := &sheet{f: f, name: CompositionSheet}
	if err := f.SetColWidth(s.name, "A", "A", 18); err != nil {
		return err
	}

	row := s.countTable(st, table.CountTable, 1)
	last := len(table.Columns) + 1

	s.set(1, row, report_model.PercentageLabel, st.headerBoxed)
	for c, pct := range table.Aggregate.Percentages {
		s.set(c+2, row, pct, st.percent)
	}
	row += 2

	s.merge(2, row, last, row, heatmapTitle, st.banner)
	row++
	s.set(1, row, report_model.ProteinNameLabel, st.headerBoxed)
	for c, label := range table.Columns {
		s.set(c+2, row, label, st.header)
	}
	row++

	firstHeat := row
	for i, values := range table.Heatmap {
		s.set(1, row, table.Rows[i].Name, st.name)
		for c, pct := range values {
			s.set(c+2, row, pct, st.heatPercent)
		}
		row++
	}
	if s.err != nil {
		return fmt.Errorf("%s: %w", s.name, s.err)
	}

	if len(table.Heatmap) > 0 {
		from, to := s.cell(2, firstHeat), s.cell(last, row-1)
		if err := f.SetConditionalFormat(s.name, from+":"+to, colorScale(table.Scale)); err != nil {
			return fmt.Errorf("%s: heatmap colour scale: %w", s.name, err)
		}
	}

	writeLegend(s, st, table.Scale, last+2, firstHeat)
	if s.err != nil {
		return fmt.Errorf("%s: %w", s.name, s.err)
	}
	return nil
}

func colorScale(scale report_model.HeatmapScale) []excelize.ConditionalFormatOptions {
	return []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "num",
		MidType:  "num",
		MaxType:  "num",
		MinValue: fmt.Sprint(scale.Min),
		MidValue: fmt.Sprint(scale.Mid),
		MaxValue: fmt.Sprint(scale.Max),
		MinColor: report_model.Hex(scale.MinColor),
		MidColor: report_model.Hex(scale.MidColor),
		MaxColor: report_model.Hex(scale.MaxColor),
	}}
}

func writeLegend(s *sheet, st styles, scale report_model.HeatmapScale, col, row int) {
	s.merge(col, row, col+1, row, legendTitle, st.banner)
	s.set(col, row+1, "Color", st.headerBoxed)
	s.set(col+1, row+1, "%", st.headerBoxed)
	for i, anchor := range []float64{scale.Min, scale.Mid, scale.Max} {
		s.set(col, row+2+i, "", st.legend[i])
		s.set(col+1, row+2+i, fmt.Sprintf("%.2f%%", anchor*100), st.header)
	}
}

func writeSites(f *excelize.File, st styles, tables []report_model.CountTable) error {
	s := &sheet{f: f, name: SitesSheet}
	if err := f.SetColWidth(s.name, "A", "A", 18); err != nil {
		return err
	}
	row := 1
	for _, table := range tables {
		row = s.countTable(st, table, row) + 1
	}
	if s.err != nil {
		return fmt.Errorf("%s: %w", s.name, s.err)
	}
	return nil
}

func writeMatrices(f *excelize.File, st styles, table report_model.MatrixTable) error {
	s := &sheet{f: f, name: MatrixSheet}
	row := 1
	for _, block := range append(append([]report_model.MatrixBlock(nil), table.Blocks...), table.Aggregate) {
		s.matrixBlock(st, table.Residues, block, row)
		row += matrixStride
	}
	if s.err != nil {
		return fmt.Errorf("%s: %w", s.name, s.err)
	}
	return nil
}

// matrixBlock lays one 20x20 grid out with the first residue across the
// columns (from C) and the second residue down the rows.
func (s *sheet) matrixBlock(st styles, residues []string, block report_model.MatrixBlock, row int) {
	const firstCol = 3
	lastCol := firstCol + len(residues) - 1

	s.merge(firstCol, row, lastCol, row, block.Header, st.banner)
	s.merge(firstCol, row+1, lastCol, row+1, firstAxis, st.headerBoxed)
	for c, label := range residues {
		s.set(firstCol+c, row+2, label, st.header)
	}

	top := row + 3
	s.merge(1, top, 1, top+len(residues)-1, secondAxis, st.rotated)
	for r, label := range residues {
		s.set(2, top+r, label, st.name)
		for c := range residues {
			s.set(firstCol+c, top+r, block.Cell(r, c), st.count)
		}
	}
}
