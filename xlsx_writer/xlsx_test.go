package xlsx_writer

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"paacman_go/composition"
	"paacman_go/report_model"
)

func testReport(t *testing.T) report_model.Report {
	t.Helper()
	var analyses []composition.Analysis
	for i, s := range [][2]string{{"P1", "AAC"}, {"P2", "CAADS"}} {
		a, err := composition.Analyze(composition.NewProteinRecord(s[0], s[1], i))
		if err != nil {
			t.Fatal(err)
		}
		analyses = append(analyses, a)
	}
	agg, err := composition.Aggregate(analyses)
	if err != nil {
		t.Fatal(err)
	}
	report, err := report_model.Assemble(analyses, agg)
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func value(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, cell, err)
	}
	return v
}

func TestFileName(t *testing.T) {
	if got := FileName("corpus"); got != "AA Analysis for corpus.xlsx" {
		t.Errorf("FileName = %q", got)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName("corpus"))
	if err := Write(path, testReport(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if got, want := f.GetSheetList(), []string{CompositionSheet, SitesSheet, MatrixSheet}; !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, want %v", got, want)
	}

	// composition: banner row 1, header row 2, P1 row 3, P2 row 4, total row 5, percentage row 6
	checks := []struct {
		sheet, cell, want string
	}{
		{CompositionSheet, "B1", "Amino Acids"},
		{CompositionSheet, "A2", report_model.ProteinNameLabel},
		{CompositionSheet, "B2", "A"},
		{CompositionSheet, "U2", "Y"},
		{CompositionSheet, "V2", report_model.TotalLabel},
		{CompositionSheet, "A3", "P1"},
		{CompositionSheet, "B3", "2"},
		{CompositionSheet, "C3", "1"},
		{CompositionSheet, "V3", "3"},
		{CompositionSheet, "A4", "P2"},
		{CompositionSheet, "V4", "5"},
		{CompositionSheet, "A5", report_model.TotalLabel},
		{CompositionSheet, "B5", "4"},
		{CompositionSheet, "V5", "8"},
		{CompositionSheet, "A6", report_model.PercentageLabel},
		{CompositionSheet, "B8", "Amino Acid Percentage Heatmap"},
		{CompositionSheet, "A10", "P1"},
		{CompositionSheet, "A11", "P2"},
		{CompositionSheet, "W10", "Heatmap Legend"},
		{CompositionSheet, "X13", "5.00%"},

		// sites: Cys table rows 1-5, blank, Ala table from row 7
		{SitesSheet, "B1", "Cysteine Ligation Sites"},
		{SitesSheet, "B2", "AC"},
		{SitesSheet, "B3", "1"},
		{SitesSheet, "A5", report_model.TotalLabel},
		{SitesSheet, "B7", "Alanine Ligation Sites"},

		// matrices: P1 block from row 1, P2 from 25, aggregate from 49
		{MatrixSheet, "C1", "P1"},
		{MatrixSheet, "C2", "1st Amino Acid"},
		{MatrixSheet, "A4", "2nd Amino Acid"},
		{MatrixSheet, "B4", "A"},
		{MatrixSheet, "C4", "1"}, // AA
		{MatrixSheet, "C5", "1"}, // first A, second C
		{MatrixSheet, "D4", "0"}, // CA
		{MatrixSheet, "C25", "P2"},
		{MatrixSheet, "C49", "Total Di-Amino Acid Counts"},
		{MatrixSheet, "C52", "2"}, // AA over both
		{MatrixSheet, "D52", "1"}, // CA
	}
	for _, c := range checks {
		if got := value(t, f, c.sheet, c.cell); got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}

	pct, err := strconv.ParseFloat(value(t, f, CompositionSheet, "B6"), 64)
	if err != nil || pct != 0.5 {
		t.Errorf("aggregate A share = %v (%v), want 0.5", pct, err)
	}
	heat, err := strconv.ParseFloat(value(t, f, CompositionSheet, "B10"), 64)
	if err != nil || heat < 0.666 || heat > 0.667 {
		t.Errorf("P1 A heatmap value = %v (%v)", heat, err)
	}

	formats, err := f.GetConditionalFormats(CompositionSheet)
	if err != nil {
		t.Fatalf("GetConditionalFormats: %v", err)
	}
	if _, ok := formats["B10:U11"]; !ok {
		t.Errorf("heatmap colour scale missing, got %v", formats)
	}
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, testReport(t)); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	if got := value(t, f, SitesSheet, "A3"); got != "P1" {
		t.Errorf("SitesSheet!A3 = %q", got)
	}
}
