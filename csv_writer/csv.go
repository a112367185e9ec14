// Package csv_writer renders a Paacman report as three CSV files, one per
// report section.
package csv_writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"paacman_go/report_model"
)

// FileName returns the CSV file name of one report section
func FileName(folder, section string) string {
	return fmt.Sprintf("%s - %s.csv", report_model.BaseName(folder), section)
}

// Write creates the three section files in dir and returns their paths
func Write(dir, folder string, report report_model.Report) ([]string, error) {
	sections := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{report_model.CompositionSection, func(w *csv.Writer) error { return WriteComposition(w, report.Composition) }},
		{report_model.SitesSection, func(w *csv.Writer) error { return WriteSites(w, report.Named) }},
		{report_model.MatrixSection, func(w *csv.Writer) error { return WriteMatrices(w, report.Matrix) }},
	}

	var paths []string
	for _, sec := range sections {
		path := filepath.Join(dir, FileName(folder, sec.name))
		if err := writeFile(path, sec.write); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(csv.NewWriter(f)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// WriteComposition writes the composition counts, the corpus percentage row
// and the per-protein heatmap values.
func WriteComposition(w *csv.Writer, table report_model.CompositionTable) error {
	writeCountTable(w, table.CountTable)

	pct := []string{report_model.PercentageLabel}
	for _, v := range table.Aggregate.Percentages {
		pct = append(pct, formatFraction(v))
	}
	w.Write(pct)
	w.Write(nil)

	w.Write([]string{"Amino Acid Percentage Heatmap"})
	w.Write(append([]string{report_model.ProteinNameLabel}, table.Columns...))
	for i, values := range table.Heatmap {
		line := []string{table.Rows[i].Name}
		for _, v := range values {
			line = append(line, formatFraction(v))
		}
		w.Write(line)
	}
	return flush(w)
}

// WriteSites writes the named dipeptide tables separated by blank lines
func WriteSites(w *csv.Writer, tables []report_model.CountTable) error {
	for i, table := range tables {
		if i > 0 {
			w.Write(nil)
		}
		writeCountTable(w, table)
	}
	return flush(w)
}

// WriteMatrices writes one 20x20 block per protein and the corpus block.
// Columns are the first residue, rows the second.
func WriteMatrices(w *csv.Writer, table report_model.MatrixTable) error {
	blocks := append(append([]report_model.MatrixBlock(nil), table.Blocks...), table.Aggregate)
	for i, block := range blocks {
		if i > 0 {
			w.Write(nil)
		}
		w.Write([]string{block.Header})
		w.Write(append([]string{"2nd \\ 1st"}, table.Residues...))
		for r, label := range table.Residues {
			line := []string{label}
			for c := range table.Residues {
				line = append(line, strconv.Itoa(block.Cell(r, c)))
			}
			w.Write(line)
		}
	}
	return flush(w)
}

func writeCountTable(w *csv.Writer, table report_model.CountTable) {
	w.Write([]string{table.Title})
	w.Write(table.Header())
	for _, r := range table.Rows {
		w.Write(countLine(r))
	}
	w.Write(countLine(table.Aggregate))
}

func countLine(r report_model.CountRow) []string {
	line := make([]string, 0, len(r.Counts)+2)
	line = append(line, r.Name)
	for _, c := range r.Counts {
		line = append(line, strconv.Itoa(c))
	}
	return append(line, strconv.Itoa(r.Total))
}

func formatFraction(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// flush surfaces any error held back by the buffered csv writer
func flush(w *csv.Writer) error {
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return nil
}
