package schedule

import (
	"sort"
	"time"
)

const clockLayout = "15:04"

// ForDay returns the items held on `day`, by ascending start time.
func ForDay(items []Item, day string) []Item {
	found := make([]Item, 0)
	for _, it := range items {
		if it.Day == day {
			found = append(found, it)
		}
	}
	// HH:MM sorts lexically
	sort.SliceStable(found, func(i, j int) bool { return found[i].StartTime < found[j].StartTime })
	return found
}

type Day struct {
	Day   string `json:"day"`
	Items []Item `json:"items"`
}

// ByDay groups `items` per weekday, Monday first. Every weekday is present, even when empty.
func ByDay(items []Item) []Day {
	days := make([]Day, 0, len(Weekdays))
	for _, wd := range Weekdays {
		days = append(days, Day{Day: wd, Items: ForDay(items, wd)})
	}
	return days
}

// Today returns the items held on the weekday of `now`.
func Today(items []Item, now time.Time) []Item {
	return ForDay(items, now.Weekday().String())
}
