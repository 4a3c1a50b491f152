package task

import (
	"math"
	"time"
)

type Stats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	Subjects       int     `json:"subjects"`
	CompletionRate float64 `json:"completionRate"` // percent, rounded
}

// Summarize counts `tasks` by status relative to `now`.
func Summarize(tasks []Task, now time.Time) Stats {
	st := Stats{Total: len(tasks)}
	subjects := make(map[string]struct{})
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
		if t.IsOverdue(now) {
			st.Overdue++
		}
		subjects[t.Subject] = struct{}{}
	}
	st.Subjects = len(subjects)
	if st.Total > 0 {
		st.CompletionRate = math.Round(float64(st.Completed) / float64(st.Total) * 100)
	}
	return st
}

// Upcoming returns at most `n` pending tasks by ascending due date.
func Upcoming(tasks []Task, n int) []Task {
	if n <= 0 {
		return []Task{}
	}
	upcoming := make([]Task, 0, n)
	for _, t := range Sort(tasks) {
		if len(upcoming) >= n || t.Completed {
			break
		}
		upcoming = append(upcoming, t)
	}
	return upcoming
}
