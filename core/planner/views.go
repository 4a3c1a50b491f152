package planner

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/agenda/core/achievement"
	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/schedule"
	"github.com/trezcool/agenda/core/task"
)

const upcomingCount = 5

type GradeReport struct {
	grade.Report
	Grades    []grade.Grade `json:"grades"`
	TargetGPA null.Float64  `json:"targetGPA"`
	Progress  null.Float64  `json:"progress"` // percent toward TargetGPA; null when no target is set
}

// GradeReport summarizes the grades and the progress toward the profile's target GPA.
func (s *Store) GradeReport() GradeReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep := GradeReport{
		Report:    grade.Summarize(s.snap.Grades),
		Grades:    append([]grade.Grade{}, s.snap.Grades...),
		TargetGPA: s.snap.Profile.TargetGPA,
	}
	if rep.TargetGPA.Valid {
		if pct, ok := grade.ProgressTowardTarget(rep.OverallGPA, rep.TargetGPA.Float64); ok {
			rep.Progress = null.Float64From(pct)
		}
	}
	return rep
}

type Dashboard struct {
	Stats         task.Stats      `json:"stats"`
	Upcoming      []task.Task     `json:"upcoming"`
	Today         []schedule.Item `json:"today"`
	GPA           float64         `json:"gpa"`
	Notifications int             `json:"notifications"`
}

// Dashboard returns the overview of the planner at `now`.
func (s *Store) Dashboard(now time.Time) Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Dashboard{
		Stats:         task.Summarize(s.snap.Tasks, now),
		Upcoming:      task.Upcoming(s.snap.Tasks, upcomingCount),
		Today:         schedule.Today(s.snap.Schedule, now),
		GPA:           grade.OverallGPA(s.snap.Grades),
		Notifications: len(task.Notifications(s.snap.Tasks, now)),
	}
}

func (s *Store) Notifications(now time.Time) []task.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return task.Notifications(s.snap.Tasks, now)
}

func (s *Store) Achievements() achievement.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return achievement.Summarize(s.snap.Tasks, s.snap.Profile)
}

func (s *Store) Stats(now time.Time) task.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return task.Summarize(s.snap.Tasks, now)
}
