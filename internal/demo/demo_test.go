package demo

import (
	"testing"
	"time"
)

func TestMatrix(t *testing.T) {
	from := Start
	to := Spans[0].End

	t.Run("returns two streams with the requested points", func(t *testing.T) {
		matrix := Matrix(from, to, 100)
		if len(matrix) != 2 {
			t.Fatalf("len(matrix) = %d, want 2", len(matrix))
		}
		for _, stream := range matrix {
			if len(stream.Values) != 100 {
				t.Errorf("stream %s has %d values, want 100", stream.Metric, len(stream.Values))
			}
		}
	})

	t.Run("values stay positive for log axes", func(t *testing.T) {
		for _, stream := range Matrix(from, to, 400) {
			for i, sample := range stream.Values {
				if sample.Value <= 0 {
					t.Errorf("stream %s value[%d] = %v, want > 0", stream.Metric, i, sample.Value)
				}
			}
		}
	})

	t.Run("timestamps span the window in order", func(t *testing.T) {
		matrix := Matrix(from, to, 50)
		for _, stream := range matrix {
			values := stream.Values
			if !values[0].Timestamp.Time().Equal(from) {
				t.Errorf("first timestamp = %v, want %v", values[0].Timestamp.Time(), from)
			}
			for i := 1; i < len(values); i++ {
				if !values[i].Timestamp.After(values[i-1].Timestamp) {
					t.Errorf("timestamps not increasing at %d: %v then %v",
						i, values[i-1].Timestamp, values[i].Timestamp)
				}
			}
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		a := Matrix(from, to, 20)
		b := Matrix(from, to, 20)
		for s := range a {
			for i := range a[s].Values {
				if a[s].Values[i] != b[s].Values[i] {
					t.Fatalf("stream %d value %d differs between runs", s, i)
				}
			}
		}
	})

	t.Run("point floor of two", func(t *testing.T) {
		matrix := Matrix(from, from.Add(time.Hour), 0)
		if len(matrix[0].Values) != 2 {
			t.Errorf("len(values) = %d, want 2", len(matrix[0].Values))
		}
	})
}
