package chartfmt

import (
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultMaxTicks is the major tick count hint used when the caller does not
// supply one.
const DefaultMaxTicks = 10

const (
	dayLayout   = "Mon 2006-01-02"
	monthLayout = "2006-01-02"

	tickLabelRotationDegrees = -20
)

var (
	gridMajorColor = drawing.Color{R: 0, G: 0, B: 0, A: 51} // black, alpha 0.2
	gridMinorColor = drawing.Color{R: 0, G: 0, B: 0, A: 26} // black, alpha 0.1
)

// Granularity is the date tick density chosen for an axis span.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
	Quarterly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	default:
		return "Unknown"
	}
}

// DateTickPlan is the tick selection for a date range: major and minor tick
// positions, the label layout, and whether minor gridlines should be drawn.
type DateTickPlan struct {
	Granularity Granularity
	Major       []time.Time
	Minor       []time.Time
	Layout      string
	MinorGrid   bool
}

// PlanDateTicks chooses tick positions and a label layout for [lo, hi] so
// that at most roughly maxTicks major ticks are drawn. Spans up to maxTicks
// days get a tick per day, up to 7x that a tick per Monday, up to a month
// per maxTicks a tick per month start, and anything wider a tick per quarter.
// A span exactly on a threshold takes the denser branch.
func PlanDateTicks(lo, hi time.Time, maxTicks int) DateTickPlan {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	span := float64(daysBetween(lo, hi))
	m := float64(maxTicks)

	switch {
	case span <= m:
		return DateTickPlan{
			Granularity: Daily,
			Major:       dailyTicks(lo, hi),
			Layout:      dayLayout,
		}
	case span <= 7*m:
		return DateTickPlan{
			Granularity: Weekly,
			Major:       mondayTicks(lo, hi),
			Minor:       dailyTicks(lo, hi),
			Layout:      dayLayout,
			MinorGrid:   true,
		}
	case span <= 30.5*m:
		return DateTickPlan{
			Granularity: Monthly,
			Major:       monthStartTicks(lo, hi),
			Minor:       mondayTicks(lo, hi),
			Layout:      monthLayout,
			MinorGrid:   span <= 25*m,
		}
	default:
		return DateTickPlan{
			Granularity: Quarterly,
			Major:       quarterStartTicks(lo, hi),
			Minor:       monthStartTicks(lo, hi),
			Layout:      monthLayout,
			MinorGrid:   span < 90*m,
		}
	}
}

// DateLayout returns the tick label layout PlanDateTicks would pick for
// [lo, hi] without generating the ticks.
func DateLayout(lo, hi time.Time, maxTicks int) string {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	if daysBetween(lo, hi) <= 7*maxTicks {
		return dayLayout
	}
	return monthLayout
}

// DateAxisOption adjusts how DateAxis formats a chart.
type DateAxisOption func(*dateAxisConfig)

type dateAxisConfig struct {
	label      string
	maxTicks   int
	yMinorGrid bool
	tickLabels bool
}

// WithXLabel sets the X axis title.
func WithXLabel(label string) DateAxisOption {
	return func(c *dateAxisConfig) { c.label = label }
}

// WithMaxTicks overrides the major tick count hint.
func WithMaxTicks(n int) DateAxisOption {
	return func(c *dateAxisConfig) { c.maxTicks = n }
}

// WithYMinorGrid also styles minor gridlines on the Y axis. It only has an
// effect when the Y axis carries explicit gridlines, e.g. after LogAxis.
func WithYMinorGrid() DateAxisOption {
	return func(c *dateAxisConfig) { c.yMinorGrid = true }
}

// WithoutTickLabels leaves the tick marks and gridlines in place but renders
// no label text.
func WithoutTickLabels() DateAxisOption {
	return func(c *dateAxisConfig) { c.tickLabels = false }
}

// DateAxis applies date tick selection and gridline styling to a chart whose
// X range holds times in chart.TimeToFloat64 space. Call it after setting the
// range and before rendering; a chart without an X range is left untouched.
func DateAxis(c *chart.Chart, opts ...DateAxisOption) {
	cfg := dateAxisConfig{maxTicks: DefaultMaxTicks, tickLabels: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := c.XAxis.Range
	if r == nil || r.IsZero() {
		return
	}
	lo := timeFromFloat(r.GetMin())
	hi := timeFromFloat(r.GetMax())

	plan := PlanDateTicks(lo, hi, cfg.maxTicks)

	ticks := make([]chart.Tick, 0, len(plan.Major))
	gridLines := make([]chart.GridLine, 0, len(plan.Major)+len(plan.Minor))
	for _, t := range plan.Major {
		tick := chart.Tick{Value: chart.TimeToFloat64(t)}
		if cfg.tickLabels {
			tick.Label = t.Format(plan.Layout)
		}
		ticks = append(ticks, tick)
		gridLines = append(gridLines, chart.GridLine{Value: tick.Value})
	}
	for _, t := range plan.Minor {
		gridLines = append(gridLines, chart.GridLine{IsMinor: true, Value: chart.TimeToFloat64(t)})
	}
	c.XAxis.Ticks = ticks
	c.XAxis.GridLines = gridLines

	c.XAxis.GridMajorStyle = gridStyle(gridMajorColor)
	c.YAxis.GridMajorStyle = gridStyle(gridMajorColor)
	if plan.MinorGrid {
		c.XAxis.GridMinorStyle = gridStyle(gridMinorColor)
	} else {
		c.XAxis.GridMinorStyle = chart.Hidden()
	}
	switch {
	case cfg.yMinorGrid && len(c.YAxis.GridLines) > 0:
		c.YAxis.GridMinorStyle = gridStyle(gridMinorColor)
	case len(c.YAxis.GridLines) > 0:
		c.YAxis.GridMinorStyle = chart.Hidden()
	default:
		// Without explicit gridlines go-chart generates alternating
		// major/minor lines from the auto ticks; mirroring the major style
		// keeps them uniform.
		c.YAxis.GridMinorStyle = gridStyle(gridMajorColor)
	}

	if cfg.tickLabels {
		c.XAxis.TickStyle.TextRotationDegrees = tickLabelRotationDegrees
		c.XAxis.TickStyle.TextHorizontalAlign = chart.TextHorizontalAlignLeft
	}
	if cfg.label != "" {
		c.XAxis.Name = cfg.label
	}
}

func gridStyle(color drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: color,
		StrokeWidth: 1.0,
	}
}

func timeFromFloat(v float64) time.Time {
	return time.Unix(0, int64(v)).UTC()
}
