// Package schedule implements the program-guide day filter. All date and
// time-of-day rules live here so HTTP handlers and services never reimplement
// them.
package schedule

import (
	"sort"
	"time"

	"evtele/internal/models"
)

// CategoryAll is the wildcard category that matches every program.
const CategoryAll = "All"

// Filter returns the guide entries for one calendar day, in air order.
//
// Rules:
//   - programs without an air date never appear
//   - the day must match the program's air date on the calendar, not by
//     instant comparison
//   - kind must match exactly; category must match unless it is CategoryAll
//   - when day is today, entries that already started (AirTime before now's
//     wall clock) are dropped
//   - when day is in the past the result is always empty
//
// Results are sorted ascending by AirTime; zero-padded "HH:MM" strings make
// the lexicographic order the chronological one.
func Filter(programs []models.Program, day time.Time, kind, category string, now time.Time) []models.Program {
	out := []models.Program{}

	dayStart := startOfDay(day)
	todayStart := startOfDay(now)
	if dayStart.Before(todayStart) {
		return out
	}

	isToday := dayStart.Equal(todayStart)
	cutoff := now.Format("15:04")

	for _, p := range programs {
		if p.AirDate == nil || p.AirDate.IsZero() {
			continue
		}
		if !sameCalendarDay(*p.AirDate, day) {
			continue
		}
		if p.Kind != kind {
			continue
		}
		if category != CategoryAll && p.Category != category {
			continue
		}
		if isToday && p.AirTime < cutoff {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AirTime < out[j].AirTime
	})

	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
