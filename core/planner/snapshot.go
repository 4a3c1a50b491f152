package planner

import (
	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/note"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/resource"
	"github.com/trezcool/agenda/core/schedule"
	"github.com/trezcool/agenda/core/task"
)

// Collection keys
const (
	KeyTasks     = "tasks"
	KeyProfile   = "profile"
	KeySchedule  = "schedule"
	KeyNotes     = "notes"
	KeyResources = "resources"
	KeyGrades    = "grades"
)

// Keys lists every persisted collection.
var Keys = []string{KeyTasks, KeyProfile, KeySchedule, KeyNotes, KeyResources, KeyGrades}

// Snapshot holds every collection of the planner.
type Snapshot struct {
	Tasks     []task.Task         `json:"tasks"`
	Profile   profile.UserProfile `json:"profile"`
	Schedule  []schedule.Item     `json:"schedule"`
	Notes     []note.Note         `json:"notes"`
	Resources []resource.Resource `json:"resources"`
	Grades    []grade.Grade       `json:"grades"`
}

// EmptySnapshot is the state of a fresh installation.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Tasks:     []task.Task{},
		Profile:   profile.Default(),
		Schedule:  []schedule.Item{},
		Notes:     []note.Note{},
		Resources: []resource.Resource{},
		Grades:    []grade.Grade{},
	}
}

// Copy returns a Snapshot that shares no slice with `s`. Nil collections become empty ones.
func (s Snapshot) Copy() Snapshot {
	cp := Snapshot{
		Tasks:     make([]task.Task, 0, len(s.Tasks)),
		Profile:   s.Profile.Copy(),
		Schedule:  append([]schedule.Item{}, s.Schedule...),
		Notes:     make([]note.Note, 0, len(s.Notes)),
		Resources: append([]resource.Resource{}, s.Resources...),
		Grades:    append([]grade.Grade{}, s.Grades...),
	}
	for _, t := range s.Tasks {
		cp.Tasks = append(cp.Tasks, t.Copy())
	}
	for _, n := range s.Notes {
		cp.Notes = append(cp.Notes, n.Copy())
	}
	return cp
}
