package xlsx_writer

import (
	"github.com/xuri/excelize/v2"

	"paacman_go/report_model"
)

const (
	blackFill = "000000"
	redFill   = "FF0000"
	aquaFill  = "7FFFD4"
	greenFill = "00FF00"

	thick         = 5  // excelize border style index
	percentFormat = 10 // 0.00%
)

type styles struct {
	banner      int
	header      int
	headerBoxed int
	name        int
	count       int
	rowTotal    int
	grandTotal  int
	percent     int
	heatPercent int
	rotated     int
	legend      [3]int // Min, Mid, Max anchor swatches
}

var centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

func boxed(sides ...string) []excelize.Border {
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: blackFill, Style: thick})
	}
	return borders
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	scale := report_model.DefaultHeatmapScale
	defs := []struct {
		dst   *int
		style excelize.Style
	}{
		{&st.banner, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
			Fill:      solid(blackFill),
			Alignment: centered,
		}},
		{&st.header, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: centered,
			Border:    boxed("bottom"),
		}},
		{&st.headerBoxed, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: centered,
			Border:    boxed("left", "right", "top", "bottom"),
		}},
		{&st.name, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: centered,
			Border:    boxed("right"),
		}},
		{&st.count, excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.rowTotal, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Fill:      solid(aquaFill),
			Alignment: centered,
			Border:    boxed("left", "right"),
		}},
		{&st.grandTotal, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
			Fill:      solid(redFill),
			Alignment: centered,
			Border:    boxed("left", "right", "top", "bottom"),
		}},
		{&st.percent, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Fill:      solid(greenFill),
			Alignment: centered,
			Border:    boxed("bottom", "right"),
			NumFmt:    percentFormat,
		}},
		{&st.heatPercent, excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			NumFmt:    percentFormat,
		}},
		{&st.rotated, excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", TextRotation: 90},
			Border:    boxed("left", "right", "top", "bottom"),
		}},
		{&st.legend[0], excelize.Style{Fill: solid(report_model.Hex(scale.MinColor)), Border: boxed("left", "right")}},
		{&st.legend[1], excelize.Style{Fill: solid(report_model.Hex(scale.MidColor)), Border: boxed("left", "right")}},
		{&st.legend[2], excelize.Style{Fill: solid(report_model.Hex(scale.MaxColor)), Border: boxed("left", "right", "bottom")}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(&d.style)
		if err != nil {
			return styles{}, err
		}
		*d.dst = id
	}
	return st, nil
}
