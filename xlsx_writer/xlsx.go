// Package xlsx_writer renders a Paacman report as an Excel workbook with three
// sheets: single residue composition (with heatmap), named dipeptide sites,
// and the full dipeptide matrices.
package xlsx_writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"paacman_go/report_model"
)

// Sheet names, in workbook order
const (
	CompositionSheet = report_model.CompositionSection
	SitesSheet       = report_model.SitesSection
	MatrixSheet      = report_model.MatrixSection
)

// Extension of the workbook file
const Extension = ".xlsx"

// FileName returns the workbook name for a corpus folder
func FileName(folder string) string {
	return report_model.BaseName(folder) + Extension
}

// Write renders report into a new workbook at path
func Write(path string, report report_model.Report) error {
	f, err := build(report)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// WriteTo renders report to w
func WriteTo(w io.Writer, report report_model.Report) error {
	f, err := build(report)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func build(report report_model.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", CompositionSheet); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SitesSheet, MatrixSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for _, render := range []func() error{
		func() error { return writeComposition(f, st, report.Composition) },
		func() error { return writeSites(f, st, report.Named) },
		func() error { return writeMatrices(f, st, report.Matrix) },
	} {
		if err := render(); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// sheet writes cells by 1-based (col, row) index and keeps the first error
type sheet struct {
	f    *excelize.File
	name string
	err  error
}

func (s *sheet) cell(col, row int) string {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && s.err == nil {
		s.err = err
	}
	return ref
}

func (s *sheet) set(col, row int, value any, style int) {
	if s.err != nil {
		return
	}
	ref := s.cell(col, row)
	if s.err != nil {
		return
	}
	if err := s.f.SetCellValue(s.name, ref, value); err != nil {
		s.err = err
		return
	}
	if style != 0 {
		s.err = s.f.SetCellStyle(s.name, ref, ref, style)
	}
}

func (s *sheet) merge(col1, row1, col2, row2 int, value any, style int) {
	s.set(col1, row1, value, style)
	if s.err != nil {
		return
	}
	from, to := s.cell(col1, row1), s.cell(col2, row2)
	if s.err != nil {
		return
	}
	if err := s.f.MergeCell(s.name, from, to); err != nil {
		s.err = err
		return
	}
	if style != 0 {
		s.err = s.f.SetCellStyle(s.name, from, to, style)
	}
}

// countTable writes header, protein rows and the aggregate row starting at
// row; it returns the first free row below the table.
func (s *sheet) countTable(st styles, table report_model.CountTable, row int) int {
	last := len(table.Columns) + 1
	s.merge(2, row, last, row, table.Title, st.banner)
	row++

	for c, label := range table.Header() {
		style := st.header
		if c == 0 || c == last {
			style = st.headerBoxed
		}
		s.set(c+1, row, label, style)
	}
	row++

	for _, r := range table.Rows {
		s.countRow(st, r, row, st.name, st.rowTotal)
		row++
	}
	s.countRow(st, table.Aggregate, row, st.headerBoxed, st.grandTotal)
	return row + 1
}

func (s *sheet) countRow(st styles, r report_model.CountRow, row, nameStyle, totalStyle int) {
	s.set(1, row, r.Name, nameStyle)
	for c, n := range r.Counts {
		s.set(c+2, row, n, st.count)
	}
	s.set(len(r.Counts)+2, row, r.Total, totalStyle)
}
