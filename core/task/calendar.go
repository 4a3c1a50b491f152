package task

import (
	"sort"
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey returns the calendar date of `t` (in its own location) as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// GroupByDate buckets tasks by the calendar date of their due date, ignoring the time of day.
func GroupByDate(tasks []Task) map[string][]Task {
	groups := make(map[string][]Task)
	for _, t := range tasks {
		key := DateKey(t.DueDate)
		groups[key] = append(groups[key], t.Copy())
	}
	return groups
}

// ForDate returns the tasks due on the calendar date of `day`, in day's location.
func ForDate(tasks []Task, day time.Time) []Task {
	key := DateKey(day)
	found := make([]Task, 0)
	for _, t := range tasks {
		if DateKey(t.DueDate.In(day.Location())) == key {
			found = append(found, t.Copy())
		}
	}
	return found
}

// ForMonth returns the tasks due in `month` of `year`, in `loc`, by ascending due date.
func ForMonth(tasks []Task, year int, month time.Month, loc *time.Location) []Task {
	found := make([]Task, 0)
	for _, t := range tasks {
		due := t.DueDate.In(loc)
		if due.Year() == year && due.Month() == month {
			found = append(found, t.Copy())
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].DueDate.Before(found[j].DueDate) })
	return found
}

// MonthGrid returns the cells of a Sunday-first month view: one zero time.Time per blank
// cell before the first of the month, then every day of the month at midnight.
func MonthGrid(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]time.Time, int(first.Weekday()), int(first.Weekday())+daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, time.Date(year, month, d, 0, 0, 0, 0, loc))
	}
	return cells
}

type CalendarDay struct {
	Date  string `json:"date"` // empty for blank cells
	Tasks []Task `json:"tasks"`
}

// Calendar fills the MonthGrid of `month` with the tasks due on each day.
func Calendar(tasks []Task, year int, month time.Month, loc *time.Location) []CalendarDay {
	byDate := make(map[string][]Task)
	for _, t := range ForMonth(tasks, year, month, loc) {
		key := DateKey(t.DueDate.In(loc))
		byDate[key] = append(byDate[key], t)
	}

	grid := MonthGrid(year, month, loc)
	days := make([]CalendarDay, 0, len(grid))
	for _, cell := range grid {
		if cell.IsZero() {
			days = append(days, CalendarDay{Tasks: []Task{}})
			continue
		}
		key := DateKey(cell)
		dayTasks := byDate[key]
		if dayTasks == nil {
			dayTasks = []Task{}
		}
		days = append(days, CalendarDay{Date: key, Tasks: dayTasks})
	}
	return days
}
