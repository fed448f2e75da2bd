package chartfmt

import (
	"testing"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGranularityString(t *testing.T) {
	tests := []struct {
		name        string
		granularity Granularity
		want        string
	}{
		{"Daily", Daily, "daily"},
		{"Weekly", Weekly, "weekly"},
		{"Monthly", Monthly, "monthly"},
		{"Quarterly", Quarterly, "quarterly"},
		{"Unknown granularity", Granularity(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.granularity.String()
			if got != tt.want {
				t.Errorf("Granularity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlanDateTicksGranularity(t *testing.T) {
	lo := date(2010, time.May, 3)

	tests := []struct {
		name     string
		days     int
		maxTicks int
		want     Granularity
	}{
		{"short span is daily", 5, 10, Daily},
		{"exactly maxticks is daily", 10, 10, Daily},
		{"just past maxticks is weekly", 11, 10, Weekly},
		{"exactly 7x maxticks is weekly", 70, 10, Weekly},
		{"just past 7x maxticks is monthly", 71, 10, Monthly},
		{"exactly 30.5x maxticks is monthly", 305, 10, Monthly},
		{"past 30.5x maxticks is quarterly", 306, 10, Quarterly},
		{"multi-year span is quarterly", 1200, 10, Quarterly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hi := lo.AddDate(0, 0, tt.days)
			plan := PlanDateTicks(lo, hi, tt.maxTicks)
			if plan.Granularity != tt.want {
				t.Errorf("PlanDateTicks(%d days, maxticks %d).Granularity = %v, want %v",
					tt.days, tt.maxTicks, plan.Granularity, tt.want)
			}
		})
	}
}

func TestPlanDateTicksDaily(t *testing.T) {
	lo := date(2010, time.May, 3)
	hi := date(2010, time.May, 10)

	plan := PlanDateTicks(lo, hi, 10)

	if plan.Granularity != Daily {
		t.Fatalf("Granularity = %v, want %v", plan.Granularity, Daily)
	}
	if len(plan.Major) != 8 {
		t.Errorf("len(Major) = %d, want 8", len(plan.Major))
	}
	if len(plan.Minor) != 0 {
		t.Errorf("len(Minor) = %d, want 0", len(plan.Minor))
	}
	if plan.MinorGrid {
		t.Error("MinorGrid = true, want false")
	}
	if plan.Layout != "Mon 2006-01-02" {
		t.Errorf("Layout = %q, want %q", plan.Layout, "Mon 2006-01-02")
	}
}

func TestPlanDateTicksWeekly(t *testing.T) {
	// 2010-05-03 is a Monday; 34 days with maxticks 10 lands in the
	// weekly branch.
	lo := date(2010, time.May, 3)
	hi := date(2010, time.June, 6)

	plan := PlanDateTicks(lo, hi, 10)

	if plan.Granularity != Weekly {
		t.Fatalf("Granularity = %v, want %v", plan.Granularity, Weekly)
	}
	for i, tick := range plan.Major {
		if tick.Weekday() != time.Monday {
			t.Errorf("Major[%d] = %v (%v), want a Monday", i, tick, tick.Weekday())
		}
	}
	if len(plan.Major) != 5 {
		t.Errorf("len(Major) = %d, want 5", len(plan.Major))
	}
	if len(plan.Minor) != 35 {
		t.Errorf("len(Minor) = %d, want 35 daily minors", len(plan.Minor))
	}
	if !plan.MinorGrid {
		t.Error("MinorGrid = false, want true")
	}
}

func TestPlanDateTicksMonthlyMinorGrid(t *testing.T) {
	lo := date(2010, time.May, 3)

	tests := []struct {
		name string
		days int
		want bool
	}{
		{"at 25x maxticks keeps the minor grid", 250, true},
		{"past 25x maxticks drops the minor grid", 251, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanDateTicks(lo, lo.AddDate(0, 0, tt.days), 10)
			if plan.Granularity != Monthly {
				t.Fatalf("Granularity = %v, want %v", plan.Granularity, Monthly)
			}
			if plan.MinorGrid != tt.want {
				t.Errorf("MinorGrid = %v, want %v", plan.MinorGrid, tt.want)
			}
		})
	}
}

func TestPlanDateTicksQuarterlyMinorGrid(t *testing.T) {
	lo := date(2010, time.January, 1)

	tests := []struct {
		name string
		days int
		want bool
	}{
		{"under 90x maxticks keeps the minor grid", 899, true},
		{"at 90x maxticks drops the minor grid", 900, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanDateTicks(lo, lo.AddDate(0, 0, tt.days), 10)
			if plan.Granularity != Quarterly {
				t.Fatalf("Granularity = %v, want %v", plan.Granularity, Quarterly)
			}
			if plan.MinorGrid != tt.want {
				t.Errorf("MinorGrid = %v, want %v", plan.MinorGrid, tt.want)
			}
		})
	}
}

func TestPlanDateTicksZeroMaxTicksUsesDefault(t *testing.T) {
	lo := date(2010, time.May, 3)
	hi := lo.AddDate(0, 0, DefaultMaxTicks)

	plan := PlanDateTicks(lo, hi, 0)

	if plan.Granularity != Daily {
		t.Errorf("Granularity = %v, want %v with the default hint", plan.Granularity, Daily)
	}
}

func TestDateLayout(t *testing.T) {
	lo := date(2010, time.May, 3)

	tests := []struct {
		name string
		days int
		want string
	}{
		{"daily span carries the weekday", 5, "Mon 2006-01-02"},
		{"weekly span carries the weekday", 40, "Mon 2006-01-02"},
		{"monthly span drops the weekday", 200, "2006-01-02"},
		{"quarterly span drops the weekday", 1200, "2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateLayout(lo, lo.AddDate(0, 0, tt.days), 10)
			if got != tt.want {
				t.Errorf("DateLayout(%d days) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}

func TestDateAxis(t *testing.T) {
	newChart := func(lo, hi time.Time) *chart.Chart {
		return &chart.Chart{
			XAxis: chart.XAxis{
				Range: &chart.ContinuousRange{
					Min: chart.TimeToFloat64(lo),
					Max: chart.TimeToFloat64(hi),
				},
			},
		}
	}

	t.Run("weekly span puts majors on Mondays", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 20))
		DateAxis(c, WithMaxTicks(5))

		if len(c.XAxis.Ticks) == 0 {
			t.Fatal("no ticks set")
		}
		for i, tick := range c.XAxis.Ticks {
			if day := timeFromFloat(tick.Value).Weekday(); day != time.Monday {
				t.Errorf("Ticks[%d] falls on %v, want Monday", i, day)
			}
		}

		minors := 0
		for _, gl := range c.XAxis.GridLines {
			if gl.IsMinor {
				minors++
			}
		}
		if minors != 18 {
			t.Errorf("minor gridlines = %d, want 18 (one per day)", minors)
		}
		if c.XAxis.GridMinorStyle.Hidden {
			t.Error("GridMinorStyle.Hidden = true, want visible minor grid")
		}
	})

	t.Run("daily span hides the minor grid", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 7))
		DateAxis(c, WithMaxTicks(5))

		if !c.XAxis.GridMinorStyle.Hidden {
			t.Error("GridMinorStyle.Hidden = false, want hidden minor grid")
		}
		if len(c.XAxis.Ticks) != 5 {
			t.Errorf("len(Ticks) = %d, want 5", len(c.XAxis.Ticks))
		}
	})

	t.Run("tick labels use the layout and are rotated", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 7))
		DateAxis(c, WithMaxTicks(5))

		if got, want := c.XAxis.Ticks[0].Label, "Mon 2010-05-03"; got != want {
			t.Errorf("Ticks[0].Label = %q, want %q", got, want)
		}
		if c.XAxis.TickStyle.TextRotationDegrees != -20 {
			t.Errorf("TextRotationDegrees = %v, want -20", c.XAxis.TickStyle.TextRotationDegrees)
		}
		if c.XAxis.TickStyle.TextHorizontalAlign != chart.TextHorizontalAlignLeft {
			t.Errorf("TextHorizontalAlign = %v, want %v",
				c.XAxis.TickStyle.TextHorizontalAlign, chart.TextHorizontalAlignLeft)
		}
	})

	t.Run("WithoutTickLabels leaves labels empty", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 7))
		DateAxis(c, WithMaxTicks(5), WithoutTickLabels())

		for i, tick := range c.XAxis.Ticks {
			if tick.Label != "" {
				t.Errorf("Ticks[%d].Label = %q, want empty", i, tick.Label)
			}
		}
		if c.XAxis.TickStyle.TextRotationDegrees != 0 {
			t.Errorf("TextRotationDegrees = %v, want 0", c.XAxis.TickStyle.TextRotationDegrees)
		}
	})

	t.Run("WithXLabel names the axis", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 7))
		DateAxis(c, WithXLabel("date"))

		if c.XAxis.Name != "date" {
			t.Errorf("XAxis.Name = %q, want %q", c.XAxis.Name, "date")
		}
	})

	t.Run("no range is a no-op", func(t *testing.T) {
		c := &chart.Chart{}
		DateAxis(c)

		if len(c.XAxis.Ticks) != 0 {
			t.Errorf("len(Ticks) = %d, want 0", len(c.XAxis.Ticks))
		}
		if len(c.XAxis.GridLines) != 0 {
			t.Errorf("len(GridLines) = %d, want 0", len(c.XAxis.GridLines))
		}
	})

	t.Run("major grid styled on both axes", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 7))
		DateAxis(c)

		if c.XAxis.GridMajorStyle.StrokeColor != gridMajorColor {
			t.Errorf("XAxis.GridMajorStyle.StrokeColor = %v, want %v",
				c.XAxis.GridMajorStyle.StrokeColor, gridMajorColor)
		}
		if c.YAxis.GridMajorStyle.StrokeColor != gridMajorColor {
			t.Errorf("YAxis.GridMajorStyle.StrokeColor = %v, want %v",
				c.YAxis.GridMajorStyle.StrokeColor, gridMajorColor)
		}
	})

	t.Run("WithYMinorGrid needs explicit Y gridlines", func(t *testing.T) {
		c := newChart(date(2010, time.May, 3), date(2010, time.May, 7))
		c.YAxis.GridLines = []chart.GridLine{{Value: 1}, {IsMinor: true, Value: 1.5}}
		DateAxis(c, WithYMinorGrid())

		if c.YAxis.GridMinorStyle.StrokeColor != gridMinorColor {
			t.Errorf("YAxis.GridMinorStyle.StrokeColor = %v, want %v",
				c.YAxis.GridMinorStyle.StrokeColor, gridMinorColor)
		}
	})
}
