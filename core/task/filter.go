package task

import (
	"sort"

	"github.com/trezcool/agenda/core"
)

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Task.Title, Task.Subject or Task.Tags.
// The input slice is left untouched.
func Filter(tasks []Task, qf QueryFilter) []Task {
	qf.Clean()
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if qf.Matches(t) {
			filtered = append(filtered, t.Copy())
		}
	}
	return filtered
}

func (qf QueryFilter) Matches(t Task) bool {
	return matchesSearch(t, qf.Search) &&
		matchesStatus(t, qf.Status) &&
		(isAny(qf.Priority) || t.Priority == qf.Priority) &&
		(isAny(qf.Category) || t.Category == qf.Category)
}

func matchesSearch(t Task, search string) bool {
	if search == "" {
		return true
	}
	if core.ContainsFold(t.Title, search) || core.ContainsFold(t.Subject, search) {
		return true
	}
	for _, tag := range t.Tags {
		if core.ContainsFold(tag, search) {
			return true
		}
	}
	return false
}

func matchesStatus(t Task, status string) bool {
	switch status {
	case StatusCompleted:
		return t.Completed
	case StatusPending:
		return !t.Completed
	default:
		return true
	}
}

// Sort returns a new slice with incomplete tasks first, each group by ascending due date.
// Ties keep their original order.
func Sort(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	for i, t := range tasks {
		sorted[i] = t.Copy()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return a.DueDate.Before(b.DueDate)
	})
	return sorted
}
