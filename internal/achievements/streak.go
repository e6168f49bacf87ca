package achievements

import "time"

// MaxStreakDays caps the backward scan.
const MaxStreakDays = 365

// Day maps t to a UTC midnight key of its calendar date as seen in t's own
// location. Callers convert timestamps into the user's zone before calling Day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaySet is a set of calendar days.
type DaySet map[time.Time]struct{}

func NewDaySet(times ...time.Time) DaySet {
	ds := make(DaySet, len(times))
	for _, t := range times {
		ds.Add(t)
	}
	return ds
}

func (ds DaySet) Add(t time.Time) {
	ds[Day(t)] = struct{}{}
}

func (ds DaySet) Has(t time.Time) bool {
	_, ok := ds[Day(t)]
	return ok
}

// CurrentStreak counts consecutive days present in days, walking backward
// from asOf and stopping at the first missing day or at MaxStreakDays.
func CurrentStreak(days DaySet, asOf time.Time) int {
	streak := 0
	day := Day(asOf)
	for streak < MaxStreakDays && days.Has(day) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
