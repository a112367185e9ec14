// Package composition_plot draws SVG figures of a Paacman report: the corpus
// residue composition, the per-protein composition heatmap and the corpus
// dipeptide heatmap.
package composition_plot

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"paacman_go/report_model"
)

// residueTicks labels integer positions with residue (or protein) names
type residueTicks []string

func (t residueTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, label := range t {
		if v := float64(i); v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: label})
		}
	}
	return ticks
}

// scalePalette samples a three-point heatmap scale
type scalePalette []color.Color

func (p scalePalette) Colors() []color.Color { return p }

func newScalePalette(scale report_model.HeatmapScale, steps int) scalePalette {
	p := make(scalePalette, steps)
	for i := range p {
		v := scale.Min + (scale.Max-scale.Min)*float64(i)/float64(steps-1)
		p[i] = scale.Color(v)
	}
	return p
}

// grid adapts a dense matrix to plotter.GridXYZ: columns along X, rows along Y
type grid struct {
	m *mat.Dense
}

func (g grid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g grid) Z(c, r int) float64 {
	return g.m.At(r, c)
}

func (g grid) X(c int) float64 {
	return float64(c)
}

func (g grid) Y(r int) float64 {
	return float64(r)
}

// CompositionBars charts the corpus share of every residue
func CompositionBars(table report_model.CompositionTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Corpus Amino Acid Composition"
	p.X.Label.Text = "Amino Acid"
	p.Y.Label.Text = "Share of Residues (%)"

	values := make(plotter.Values, len(table.Aggregate.Percentages))
	for i, v := range table.Aggregate.Percentages {
		values[i] = v * 100
	}
	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(table.Columns...)
	return p, nil
}

// CompositionHeatmap draws the per-protein residue shares on the report's
// heatmap scale; shares outside the scale take the end colours.
func CompositionHeatmap(table report_model.CompositionTable) (*plot.Plot, error) {
	if len(table.Heatmap) == 0 {
		return nil, fmt.Errorf("composition heatmap: no proteins")
	}
	data := make([]float64, 0, len(table.Heatmap)*len(table.Columns))
	names := make(residueTicks, len(table.Rows))
	for i, row := range table.Heatmap {
		data = append(data, row...)
		names[i] = table.Rows[i].Name
	}

	hm := plotter.NewHeatMap(grid{mat.NewDense(len(table.Heatmap), len(table.Columns), data)}, newScalePalette(table.Scale, 21))
	hm.Min, hm.Max = table.Scale.Min, table.Scale.Max
	hm.Underflow, hm.Overflow = table.Scale.MinColor, table.Scale.MaxColor

	p := plot.New()
	p.Title.Text = "Amino Acid Percentage Heatmap"
	p.X.Label.Text = "Amino Acid"
	p.Y.Label.Text = "Protein"
	p.X.Tick.Marker = residueTicks(table.Columns)
	p.Y.Tick.Marker = names
	p.Add(hm)
	return p, nil
}

// DipeptideHeatmap draws one dipeptide block, first residue across, second down
func DipeptideHeatmap(block report_model.MatrixBlock, residues []string) (*plot.Plot, error) {
	// grid rows are Y: transpose so the second residue runs along Y
	dense := mat.DenseCopyOf(block.Matrix.Dense().T())
	hm := plotter.NewHeatMap(grid{dense}, palette.Heat(12, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = block.Header
	p.X.Label.Text = "1st Amino Acid"
	p.Y.Label.Text = "2nd Amino Acid"
	p.X.Tick.Marker = residueTicks(residues)
	p.Y.Tick.Marker = residueTicks(residues)
	p.Add(hm)
	return p, nil
}

// SVG renders p to SVG bytes
func SVG(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileNames lists the figure files written for a corpus folder
func FileNames(folder string) []string {
	return []string{
		"AA Composition for " + folder + ".svg",
		"AA Heatmap for " + folder + ".svg",
		"Di-AA Heatmap for " + folder + ".svg",
	}
}

// Write renders every figure of report into dir and returns the paths
func Write(dir, folder string, report report_model.Report) ([]string, error) {
	bars, err := CompositionBars(report.Composition)
	if err != nil {
		return nil, err
	}
	heat, err := CompositionHeatmap(report.Composition)
	if err != nil {
		return nil, err
	}
	dipeptides, err := DipeptideHeatmap(report.Matrix.Aggregate, report.Matrix.Residues)
	if err != nil {
		return nil, err
	}

	rowHeight := vg.Length(len(report.Composition.Rows)) * vg.Points(14)
	figures := []struct {
		p    *plot.Plot
		w, h vg.Length
	}{
		{bars, 8 * vg.Inch, 4 * vg.Inch},
		{heat, 8 * vg.Inch, 2*vg.Inch + rowHeight},
		{dipeptides, 7 * vg.Inch, 7 * vg.Inch},
	}

	var paths []string
	for i, name := range FileNames(folder) {
		svg, err := SVG(figures[i].p, figures[i].w, figures[i].h)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
