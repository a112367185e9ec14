package report_model

import (
	"image/color"
)

// HeatmapScale is a three-point colour scale over composition fractions.
// Values below Min or above Max take the end colours; values between anchors
// interpolate linearly.
type HeatmapScale struct {
	Min, Mid, Max                float64
	MinColor, MidColor, MaxColor color.RGBA
}

// DefaultHeatmapScale anchors blue at 0%, white at 5% and red at 10%
var DefaultHeatmapScale = HeatmapScale{
	Min: 0, Mid: 0.05, Max: 0.10,
	MinColor: color.RGBA{R: 0x00, G: 0x00, B: 0xAA, A: 0xFF},
	MidColor: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	MaxColor: color.RGBA{R: 0xAA, G: 0x00, B: 0x00, A: 0xFF},
}

// Clamp limits v to [Min, Max]
func (h HeatmapScale) Clamp(v float64) float64 {
	if v < h.Min {
		return h.Min
	}
	if v > h.Max {
		return h.Max
	}
	return v
}

// Color maps v onto the scale
func (h HeatmapScale) Color(v float64) color.RGBA {
	v = h.Clamp(v)
	if v <= h.Mid {
		return lerp(h.MinColor, h.MidColor, fraction(v, h.Min, h.Mid))
	}
	return lerp(h.MidColor, h.MaxColor, fraction(v, h.Mid, h.Max))
}

// Hex renders c as RRGGBB, the form spreadsheet colour scales expect
func Hex(c color.RGBA) string {
	const digits = "0123456789ABCDEF"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0F]
	}
	return string(b)
}

func fraction(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
