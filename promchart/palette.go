package promchart

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// SeriesPalette is Paul Tol's qualitative color palette, designed for colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var SeriesPalette = []drawing.Color{
	{R: 0x44, G: 0x77, B: 0xAA, A: 0xFF}, // Blue
	{R: 0xEE, G: 0x66, B: 0x77, A: 0xFF}, // Rose
	{R: 0x22, G: 0x88, B: 0x33, A: 0xFF}, // Green
	{R: 0xCC, G: 0xBB, B: 0x44, A: 0xFF}, // Olive/Yellow
	{R: 0x66, G: 0xCC, B: 0xEE, A: 0xFF}, // Cyan
	{R: 0xAA, G: 0x33, B: 0x77, A: 0xFF}, // Purple
	{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF}, // Grey
	{R: 0xEE, G: 0x88, B: 0x66, A: 0xFF}, // Orange
	{R: 0x44, G: 0xBB, B: 0x99, A: 0xFF}, // Teal
	{R: 0xFF, G: 0xAA, B: 0xBB, A: 0xFF}, // Pink
}

// SeriesColor returns the color for a given series index, cycling through the palette.
func SeriesColor(index int) drawing.Color {
	return SeriesPalette[index%len(SeriesPalette)]
}

// SeriesStyle returns a stroke style with the color for the given series index.
func SeriesStyle(index int) chart.Style {
	return chart.Style{
		StrokeColor: SeriesColor(index),
		StrokeWidth: 1.5,
	}
}
