// Package calendar turns dated cards into per-day counts for the heatmap.
package calendar

import (
	"time"

	"github.com/idilsaglam/notepad/internal/model"
)

const dayLayout = "2006-01-02"

// DayKey identifies a calendar day as YYYY-MM-DD.
type DayKey string

// KeyOf drops the time of day, in t's own location.
func KeyOf(t time.Time) DayKey { return DayKey(t.Format(dayLayout)) }

// Time parses the key back to midnight in loc.
func (k DayKey) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, string(k), loc)
}

// Counts maps a day to the number of cards dated that day.
type Counts map[DayKey]int

// Get returns 0 for days with no cards.
func (c Counts) Get(k DayKey) int { return c[k] }

// Total is the sum of all counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Aggregate counts cards per day. It takes no reference date and is not
// bounded to any window: the year-to-date window is applied when drawing,
// by iterating DayKeysInYear(ref) or checking InWindow(k, ref).
func Aggregate(items []model.Item) Counts {
	out := make(Counts, len(items))
	for _, it := range items {
		out[KeyOf(it.Date)]++
	}
	return out
}

// Level is the color band of a heatmap cell.
type Level int

const (
	Empty Level = iota
	Low
	Medium
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "empty"
	}
}

// Band maps a count to its color band: 0, 1-2, 3-4, 5+.
func Band(count int) Level {
	switch {
	case count <= 0:
		return Empty
	case count < 3:
		return Low
	case count < 5:
		return Medium
	default:
		return High
	}
}

func startOfYear(ref time.Time) time.Time {
	return time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
}

func midnight(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
}

// InWindow reports whether k falls in [Jan 1 of ref's year, ref].
func InWindow(k DayKey, ref time.Time) bool {
	d, err := k.Time(ref.Location())
	if err != nil {
		return false
	}
	return !d.Before(startOfYear(ref)) && !d.After(midnight(ref))
}

// MonthDays lists the days of month m in ref's year that fall inside the
// window. Months after ref yield nothing.
func MonthDays(ref time.Time, m time.Month) []DayKey {
	first := time.Date(ref.Year(), m, 1, 0, 0, 0, 0, ref.Location())
	last := midnight(ref)
	var out []DayKey
	for d := first; d.Month() == m && !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, KeyOf(d))
	}
	return out
}

// DayKeysInYear lists every day from January 1 of ref's year up to and
// including ref, month-major.
func DayKeysInYear(ref time.Time) []DayKey {
	out := make([]DayKey, 0, ref.YearDay())
	for m := time.January; m <= ref.Month(); m++ {
		out = append(out, MonthDays(ref, m)...)
	}
	return out
}
