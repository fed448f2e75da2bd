// Package chartfmt applies opinionated formatting to go-chart axes.
//
// DateAxis picks date tick positions, label formats and gridline density for
// an axis's current X range. LogAxis labels a logarithmic Y axis with metric
// prefixes and widens its tick set so narrow ranges stay readable. Pause
// keeps rendered output on screen when a program is run from a terminal.
// Each helper is a stateless mutation of a caller-owned chart; call them
// after the ranges are set and before rendering.
package chartfmt
