// Package achievement evaluates the badges a student unlocks from their tasks and profile.
package achievement

import (
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/task"
)

// IDs
const (
	FirstTask  = "first-task"
	TaskMaster = "task-master"
	Organized  = "organized"
	GoalSetter = "goal-setter"
	Productive = "productive"
	Scholar    = "scholar"
)

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	MaxProgress int    `json:"maxProgress"`
}

// Percent returns the progress toward unlocking `a`, from 0 to 100.
func (a Achievement) Percent() float64 {
	if a.MaxProgress <= 0 {
		return 0
	}
	return float64(a.Progress) / float64(a.MaxProgress) * 100
}

// Evaluate returns every achievement, in display order, with its progress.
func Evaluate(tasks []task.Task, p profile.UserProfile) []Achievement {
	var completed int
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return []Achievement{
		counter(FirstTask, "First Task", "Complete your first task", completed, 1),
		counter(TaskMaster, "Task Master", "Complete 10 tasks", completed, 10),
		flag(Organized, "Super Organized", "Fill in your profile", p.IsComplete()),
		flag(GoalSetter, "Goal Setter", "Set your academic goals", len(p.Goals) > 0),
		counter(Productive, "Productive", "Complete 5 tasks", completed, 5),
		flag(Scholar, "Scholar", "Add your favorite subjects", len(p.FavoriteSubjects) > 0),
	}
}

func counter(id, title, desc string, count, target int) Achievement {
	progress := count
	if progress > target {
		progress = target
	}
	return Achievement{
		ID:          id,
		Title:       title,
		Description: desc,
		Unlocked:    count >= target,
		Progress:    progress,
		MaxProgress: target,
	}
}

func flag(id, title, desc string, ok bool) Achievement {
	a := Achievement{ID: id, Title: title, Description: desc, Unlocked: ok, MaxProgress: 1}
	if ok {
		a.Progress = 1
	}
	return a
}

// Unlocked returns the unlocked achievements of `all`.
func Unlocked(all []Achievement) []Achievement {
	unlocked := make([]Achievement, 0, len(all))
	for _, a := range all {
		if a.Unlocked {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// Next returns the first `n` achievements of `all` still locked.
func Next(all []Achievement, n int) []Achievement {
	next := make([]Achievement, 0)
	for _, a := range all {
		if len(next) >= n {
			break
		}
		if !a.Unlocked {
			next = append(next, a)
		}
	}
	return next
}

// Summary is the achievements view: what is unlocked and what to aim for next.
type Summary struct {
	Unlocked []Achievement `json:"unlocked"`
	Next     []Achievement `json:"next"`
	Total    int           `json:"total"`
}

func Summarize(tasks []task.Task, p profile.UserProfile) Summary {
	all := Evaluate(tasks, p)
	return Summary{Unlocked: Unlocked(all), Next: Next(all, 3), Total: len(all)}
}
