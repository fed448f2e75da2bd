package chartfmt

import "testing"

func TestLogValueFormatter(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"mega prefix", 2000000.0, "2M"},
		{"kilo prefix", 1500.0, "1.5k"},
		{"no prefix", 2.0, "2"},
		{"milli prefix", 0.002, "2m"},
		{"sub-milli falls through to milli", 0.00005, "0.05m"},
		{"mantissa 6 suppressed", 600.0, ""},
		{"mantissa 8 suppressed", 80000.0, ""},
		{"mantissa 9 suppressed", 9.0, ""},
		{"mantissa 1.5 labeled", 1.5, "1.5"},
		{"mantissa 15 labeled", 15.0, "15"},
		{"three significant figures", 1230.0, "1.23k"},
		{"decade", 10.0, "10"},
		{"float32 input", float32(2000), "2k"},
		{"int input", 50, "50"},
		{"non-numeric input", "nope", ""},
		{"nil input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogValueFormatter(tt.value)
			if got != tt.want {
				t.Errorf("LogValueFormatter(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
