package pkg

import "time"

const DateLayout = "2006-01-02"

// StartOfDay returns midnight of t's date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds returns [midnight, next midnight) of t's date. The next midnight
// is computed with AddDate, so DST days are 23 or 25 hours long.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}
