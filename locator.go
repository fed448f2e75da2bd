package chartfmt

import "time"

// daysBetween returns the number of whole days from lo to hi, truncated.
func daysBetween(lo, hi time.Time) int {
	return int(hi.Sub(lo).Hours() / 24)
}

// midnightOnOrAfter returns the first midnight at or after t.
func midnightOnOrAfter(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if day.Before(t) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// dailyTicks returns midnight of every day in [lo, hi].
func dailyTicks(lo, hi time.Time) []time.Time {
	var ticks []time.Time
	for t := midnightOnOrAfter(lo); !t.After(hi); t = t.AddDate(0, 0, 1) {
		ticks = append(ticks, t)
	}
	return ticks
}

// mondayTicks returns midnight of every Monday in [lo, hi].
func mondayTicks(lo, hi time.Time) []time.Time {
	start := midnightOnOrAfter(lo)
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, 1)
	}
	var ticks []time.Time
	for t := start; !t.After(hi); t = t.AddDate(0, 0, 7) {
		ticks = append(ticks, t)
	}
	return ticks
}

// monthStartTicks returns the first of every month in [lo, hi].
func monthStartTicks(lo, hi time.Time) []time.Time {
	start := time.Date(lo.Year(), lo.Month(), 1, 0, 0, 0, 0, lo.Location())
	if start.Before(lo) {
		start = start.AddDate(0, 1, 0)
	}
	var ticks []time.Time
	for t := start; !t.After(hi); t = t.AddDate(0, 1, 0) {
		ticks = append(ticks, t)
	}
	return ticks
}

// quarterStartTicks returns every January, April, July and October first
// in [lo, hi].
func quarterStartTicks(lo, hi time.Time) []time.Time {
	quarter := (int(lo.Month()) - 1) / 3
	start := time.Date(lo.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, lo.Location())
	if start.Before(lo) {
		start = start.AddDate(0, 3, 0)
	}
	var ticks []time.Time
	for t := start; !t.After(hi); t = t.AddDate(0, 3, 0) {
		ticks = append(ticks, t)
	}
	return ticks
}
