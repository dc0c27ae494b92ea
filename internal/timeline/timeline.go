// Package timeline groups cards by calendar month, newest first.
package timeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/idilsaglam/notepad/internal/model"
)

// MonthKey is the bucket a card falls into on the timeline.
type MonthKey struct {
	Month time.Month
	Year  int
}

// KeyOf is the month and year of t in t's location.
func KeyOf(t time.Time) MonthKey { return MonthKey{Month: t.Month(), Year: t.Year()} }

// Label renders the key through f, EnglishMonths when f is nil.
func (k MonthKey) Label(f MonthFormatter) string {
	if f == nil {
		f = EnglishMonths
	}
	return f.FormatMonth(k.Month, k.Year)
}

// Before orders keys chronologically.
func (k MonthKey) Before(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

// MonthFormatter spells out a month heading, e.g. "October 2024".
type MonthFormatter interface {
	FormatMonth(m time.Month, year int) string
}

// MonthFormatterFunc adapts a plain function.
type MonthFormatterFunc func(m time.Month, year int) string

func (f MonthFormatterFunc) FormatMonth(m time.Month, year int) string { return f(m, year) }

// EnglishMonths is the fixed default: full English month name and 4-digit year.
var EnglishMonths MonthFormatter = MonthFormatterFunc(func(m time.Month, year int) string {
	return fmt.Sprintf("%s %04d", m.String(), year)
})

// MonthGroup is one timeline section.
type MonthGroup struct {
	Key   MonthKey
	Items []model.Item
}

// Sorted returns a copy of items ordered by date, newest first.
// Equal dates keep their input order.
func Sorted(items []model.Item) []model.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// Group sorts items newest first and buckets them by month. Groups come out
// in order of first appearance, which after the sort is reverse chronological.
func Group(items []model.Item) []MonthGroup {
	var groups []MonthGroup
	index := make(map[MonthKey]int)
	for _, it := range Sorted(items) {
		k := KeyOf(it.Date)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, MonthGroup{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Flatten lists the cards in display order.
func Flatten(groups []MonthGroup) []model.Item {
	var out []model.Item
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}
