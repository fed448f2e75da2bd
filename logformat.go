package chartfmt

import (
	"fmt"
	"math"
)

var metricPrefixes = []struct {
	mul    float64
	prefix string
}{
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
}

// LogValueFormatter renders a log axis tick value as a 3-significant-figure
// number with a metric prefix (2000000 -> "2M", 1500 -> "1.5k"). Values whose
// mantissa rounds to 6, 8 or 9 get an empty label; on a dense log axis those
// ticks sit too close to their neighbors to label legibly.
//
// The signature matches go-chart's ValueFormatter, so it can be installed as
// an axis formatter directly.
func LogValueFormatter(v interface{}) string {
	x, ok := toFloat(v)
	if !ok {
		return ""
	}

	mantissa := math.Round(x*math.Pow(10, -math.Floor(math.Log10(x)))*10) / 10
	switch mantissa {
	case 6, 8, 9:
		return ""
	}

	var mul float64
	var prefix string
	for _, p := range metricPrefixes {
		mul, prefix = p.mul, p.prefix
		if x >= p.mul {
			break
		}
	}
	return fmt.Sprintf("%.3g%s", x/mul, prefix)
}

func toFloat(v interface{}) (float64, bool) {
	switch typed := v.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	default:
		return 0, false
	}
}
