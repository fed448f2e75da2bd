// Package promchart converts Prometheus range-query results into go-chart
// time series, one palette color per sample stream.
package promchart

import (
	"time"

	"github.com/prometheus/common/model"
	"github.com/wcharczuk/go-chart/v2"
)

// SeriesFromStream converts a single sample stream into a time series named
// after its metric and styled with the palette color for index.
func SeriesFromStream(stream *model.SampleStream, index int) chart.TimeSeries {
	ts := chart.TimeSeries{
		Name:    stream.Metric.String(),
		Style:   SeriesStyle(index),
		XValues: make([]time.Time, 0, len(stream.Values)),
		YValues: make([]float64, 0, len(stream.Values)),
	}
	for _, sample := range stream.Values {
		ts.XValues = append(ts.XValues, sample.Timestamp.Time())
		ts.YValues = append(ts.YValues, float64(sample.Value))
	}
	return ts
}

// Series converts a matrix into one chart series per sample stream, cycling
// through the palette in stream order.
func Series(matrix model.Matrix) []chart.Series {
	series := make([]chart.Series, 0, len(matrix))
	for i, stream := range matrix {
		series = append(series, SeriesFromStream(stream, i))
	}
	return series
}
