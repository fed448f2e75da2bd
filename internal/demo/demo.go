// Package demo synthesizes the sample series used by the demo renderer and
// the terminal preview. Everything is generated in-process; there is no
// Prometheus behind it.
package demo

import (
	"math"
	"math/rand"
	"time"

	"github.com/prometheus/common/model"
)

// Start is the first timestamp of every demo span.
var Start = time.Date(2010, time.May, 3, 0, 0, 0, 0, time.UTC)

// Span is a demo date window paired with the tick granularity it lands on.
type Span struct {
	Name string
	End  time.Time
}

// Spans are the demo date windows, one per branch of the date tick selection
// with a max tick hint of 5.
var Spans = []Span{
	{Name: "daily", End: time.Date(2010, time.May, 20, 0, 0, 0, 0, time.UTC)},
	{Name: "weekly", End: time.Date(2010, time.July, 1, 0, 0, 0, 0, time.UTC)},
	{Name: "monthly", End: time.Date(2010, time.November, 1, 0, 0, 0, 0, time.UTC)},
	{Name: "quarterly", End: time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)},
}

const (
	sinePeriodPoints = 48
	sineBase         = 100
	sineAmplitude    = 80
	walkStart        = 100
	walkVolatility   = 0.02
	walkFloor        = 1
)

// Matrix synthesizes a two-series range-query result across [from, to]: a
// sine wave and a seeded multiplicative random walk. Both series stay
// positive so the same data can feed a log axis. The walk is seeded, so the
// output is identical across runs.
func Matrix(from, to time.Time, points int) model.Matrix {
	if points < 2 {
		points = 2
	}
	step := to.Sub(from) / time.Duration(points-1)
	rng := rand.New(rand.NewSource(42))

	sine := &model.SampleStream{
		Metric: model.Metric{model.MetricNameLabel: "demo_sine", "wave": "daily"},
	}
	walk := &model.SampleStream{
		Metric: model.Metric{model.MetricNameLabel: "demo_walk", "trend": "drift"},
	}

	level := float64(walkStart)
	for i := 0; i < points; i++ {
		ts := model.TimeFromUnixNano(from.Add(time.Duration(i) * step).UnixNano())

		phase := 2 * math.Pi * float64(i) / sinePeriodPoints
		sine.Values = append(sine.Values, model.SamplePair{
			Timestamp: ts,
			Value:     model.SampleValue(sineBase + sineAmplitude*math.Sin(phase)),
		})

		level += level * walkVolatility * rng.NormFloat64()
		if level < walkFloor {
			level = walkFloor
		}
		walk.Values = append(walk.Values, model.SamplePair{
			Timestamp: ts,
			Value:     model.SampleValue(level),
		})
	}

	return model.Matrix{sine, walk}
}
