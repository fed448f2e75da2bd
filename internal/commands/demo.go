package commands

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"time"

	"github.com/akasprzok/chartfmt"
	"github.com/akasprzok/chartfmt/internal/demo"
	"github.com/akasprzok/chartfmt/promchart"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
)

type DemoCmd struct {
	Out         string `name:"out" short:"o" help:"Output PNG path." default:"chartfmt_demo.png" env:"CHARTFMT_DEMO_OUT"`
	MaxTicks    int    `name:"maxticks" help:"Major tick count hint." default:"5"`
	Width       int    `help:"Panel width in pixels." default:"1000"`
	PanelHeight int    `name:"panel-height" help:"Panel height in pixels." default:"220"`
	Pause       bool   `help:"Wait for Enter after writing the image."`
}

// logPanels are the log axis showcases: one range narrow enough for dense
// minor ticks, one too wide for them.
var logPanels = []struct {
	Name string
	Min  float64
	Max  float64
}{
	{Name: "log dense", Min: 1, Max: 50},
	{Name: "log sparse", Min: 0.5, Max: 5000},
}

func (d *DemoCmd) Run(ctx *Context) error {
	panels := make([]panel, 0, len(demo.Spans)+len(logPanels))

	for _, span := range demo.Spans {
		matrix := demo.Matrix(demo.Start, span.End, DemoPoints)
		c := &chart.Chart{
			Width:  d.Width,
			Height: d.PanelHeight,
			Series: promchart.Series(matrix),
			XAxis: chart.XAxis{
				Range: &chart.ContinuousRange{
					Min: chart.TimeToFloat64(demo.Start),
					Max: chart.TimeToFloat64(span.End),
				},
			},
		}
		chartfmt.DateAxis(c, chartfmt.WithMaxTicks(d.MaxTicks), chartfmt.WithXLabel("date"))

		ctx.Logger.WithFields(logrus.Fields{
			"span":     span.Name,
			"maxticks": d.MaxTicks,
			"ticks":    len(c.XAxis.Ticks),
		}).Debug("planned date panel")

		img, err := renderPNG(c)
		if err != nil {
			return fmt.Errorf("rendering %s panel: %w", span.Name, err)
		}
		caption := fmt.Sprintf("%s: %s to %s, maxticks %d",
			span.Name, demo.Start.Format("2006-01-02"), span.End.Format("2006-01-02"), d.MaxTicks)
		panels = append(panels, panel{caption: caption, img: img})
	}

	logSpan := demo.Spans[0]
	for _, lp := range logPanels {
		c := &chart.Chart{
			Width:  d.Width,
			Height: d.PanelHeight,
			Series: []chart.Series{logSweepSeries(demo.Start, logSpan.End, lp.Min, lp.Max)},
			XAxis: chart.XAxis{
				Range: &chart.ContinuousRange{
					Min: chart.TimeToFloat64(demo.Start),
					Max: chart.TimeToFloat64(logSpan.End),
				},
			},
			YAxis: chart.YAxis{
				Range: &chart.LogarithmicRange{Min: lp.Min, Max: lp.Max},
			},
		}
		chartfmt.LogAxis(c)
		chartfmt.DateAxis(c, chartfmt.WithMaxTicks(d.MaxTicks), chartfmt.WithYMinorGrid())

		ctx.Logger.WithFields(logrus.Fields{
			"panel":  lp.Name,
			"yticks": len(c.YAxis.Ticks),
		}).Debug("planned log panel")

		img, err := renderPNG(c)
		if err != nil {
			return fmt.Errorf("rendering %s panel: %w", lp.Name, err)
		}
		caption := fmt.Sprintf("%s: y range %g to %g", lp.Name, lp.Min, lp.Max)
		panels = append(panels, panel{caption: caption, img: img})
	}

	out := stackPanels(panels, d.Width, d.PanelHeight)
	if err := writePNG(d.Out, out); err != nil {
		return err
	}
	ctx.Logger.WithField("path", d.Out).Info("wrote demo image")

	if d.Pause {
		chartfmt.Pause("")
	}
	return nil
}

// logSweepSeries is an exponential sweep from min to max across [lo, hi],
// guaranteed positive for the log scale.
func logSweepSeries(lo, hi time.Time, min, max float64) chart.TimeSeries {
	const points = 200

	ts := chart.TimeSeries{
		Name:    "sweep",
		Style:   promchart.SeriesStyle(0),
		XValues: make([]time.Time, 0, points),
		YValues: make([]float64, 0, points),
	}
	step := hi.Sub(lo) / (points - 1)
	for i := 0; i < points; i++ {
		frac := float64(i) / (points - 1)
		ts.XValues = append(ts.XValues, lo.Add(time.Duration(i)*step))
		ts.YValues = append(ts.YValues, min*math.Pow(max/min, frac))
	}
	return ts
}

func renderPNG(c *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding rendered chart: %w", err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
