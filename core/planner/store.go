// Package planner holds the domain store: the single owner of every planner collection.
package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/note"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/resource"
	"github.com/trezcool/agenda/core/schedule"
	"github.com/trezcool/agenda/core/task"
)

var ErrNotFound = errors.New("not found")

type (
	// Persister receives a collection after each of its mutations.
	// It must not keep a reference to the collection once Save returns.
	Persister interface {
		Save(key string, collection interface{})
	}

	Option func(*Store)

	Store struct {
		mu        sync.RWMutex
		snap      Snapshot
		persister Persister
		nowFunc   func() time.Time
		newID     func() string
	}
)

// WithNowFunc sets the clock used for note timestamps.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Store) { s.nowFunc = f }
}

// WithIDFunc sets the generator of record IDs.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// NewStore returns a store holding a copy of `snap`. A nil persister discards every save.
func NewStore(snap Snapshot, persister Persister, opts ...Option) *Store {
	s := &Store{
		snap:      snap.Copy(),
		persister: persister,
		nowFunc:   core.NowFunc,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// persist must be called with the write lock held.
func (s *Store) persist(key string) {
	if s.persister == nil {
		return
	}
	var coll interface{}
	switch key {
	case KeyTasks:
		coll = s.snap.Tasks
	case KeyProfile:
		coll = s.snap.Profile
	case KeySchedule:
		coll = s.snap.Schedule
	case KeyNotes:
		coll = s.snap.Notes
	case KeyResources:
		coll = s.snap.Resources
	case KeyGrades:
		coll = s.snap.Grades
	default:
		return
	}
	s.persister.Save(key, coll)
}

func notFound(kind, id string) error {
	return errors.Wrapf(ErrNotFound, "%s %q", kind, id)
}

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap.Copy()
	snap.Profile = s.profileWithGPA()
	return snap
}

// Tasks

func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]task.Task, 0, len(s.snap.Tasks))
	for _, t := range s.snap.Tasks {
		tasks = append(tasks, t.Copy())
	}
	return tasks
}

func (s *Store) Task(id string) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.snap.Tasks {
		if t.ID == id {
			return t.Copy(), nil
		}
	}
	return task.Task{}, notFound("task", id)
}

// AddTask stores `t` under a new ID, as pending.
func (s *Store) AddTask(t task.Task) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t = t.Copy()
	t.ID = s.newID()
	t.Completed = false
	if t.Tags == nil {
		t.Tags = []string{}
	}
	s.snap.Tasks = append(s.snap.Tasks, t)
	s.persist(KeyTasks)
	return t.Copy()
}

// ToggleTask flips the completion of a task.
func (s *Store) ToggleTask(id string) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Tasks {
		if s.snap.Tasks[i].ID == id {
			s.snap.Tasks[i].Completed = !s.snap.Tasks[i].Completed
			s.persist(KeyTasks)
			return s.snap.Tasks[i].Copy(), nil
		}
	}
	return task.Task{}, notFound("task", id)
}

func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.snap.Tasks {
		if t.ID == id {
			s.snap.Tasks = append(s.snap.Tasks[:i:i], s.snap.Tasks[i+1:]...)
			s.persist(KeyTasks)
			return nil
		}
	}
	return notFound("task", id)
}

// Grades

func (s *Store) Grades() []grade.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]grade.Grade{}, s.snap.Grades...)
}

// AddGrade stores `g` under a new ID. A zero date is set to now.
func (s *Store) AddGrade(g grade.Grade) grade.Grade {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.newID()
	if g.Date.IsZero() {
		g.Date = s.nowFunc()
	}
	s.snap.Grades = append(s.snap.Grades, g)
	s.persist(KeyGrades)
	return g
}

func (s *Store) DeleteGrade(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.snap.Grades {
		if g.ID == id {
			s.snap.Grades = append(s.snap.Grades[:i:i], s.snap.Grades[i+1:]...)
			s.persist(KeyGrades)
			return nil
		}
	}
	return notFound("grade", id)
}

// Notes

func (s *Store) Notes() []note.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notes := make([]note.Note, 0, len(s.snap.Notes))
	for _, n := range s.snap.Notes {
		notes = append(notes, n.Copy())
	}
	return notes
}

// AddNote stores a note created now.
func (s *Store) AddNote(nn note.NewNote) note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := nn.ToNote(s.nowFunc())
	n.ID = s.newID()
	s.snap.Notes = append(s.snap.Notes, n)
	s.persist(KeyNotes)
	return n.Copy()
}

// UpdateNote replaces the contents of a note. Its creation date is kept.
func (s *Store) UpdateNote(id string, nn note.NewNote) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.snap.Notes {
		if n.ID == id {
			s.snap.Notes[i] = nn.Apply(n, s.nowFunc())
			s.persist(KeyNotes)
			return s.snap.Notes[i].Copy(), nil
		}
	}
	return note.Note{}, notFound("note", id)
}

func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.snap.Notes {
		if n.ID == id {
			s.snap.Notes = append(s.snap.Notes[:i:i], s.snap.Notes[i+1:]...)
			s.persist(KeyNotes)
			return nil
		}
	}
	return notFound("note", id)
}

// Resources

func (s *Store) Resources() []resource.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]resource.Resource{}, s.snap.Resources...)
}

// AddResource stores `r` under a new ID, not completed.
func (s *Store) AddResource(r resource.Resource) resource.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.newID()
	r.Completed = false
	s.snap.Resources = append(s.snap.Resources, r)
	s.persist(KeyResources)
	return r
}

// UpdateResource replaces the contents of a resource. Its completion is kept.
func (s *Store) UpdateResource(id string, nr resource.NewResource) (resource.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.snap.Resources {
		if r.ID == id {
			s.snap.Resources[i] = nr.Apply(r)
			s.persist(KeyResources)
			return s.snap.Resources[i], nil
		}
	}
	return resource.Resource{}, notFound("resource", id)
}

func (s *Store) ToggleResource(id string) (resource.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Resources {
		if s.snap.Resources[i].ID == id {
			s.snap.Resources[i].Completed = !s.snap.Resources[i].Completed
			s.persist(KeyResources)
			return s.snap.Resources[i], nil
		}
	}
	return resource.Resource{}, notFound("resource", id)
}

func (s *Store) DeleteResource(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.snap.Resources {
		if r.ID == id {
			s.snap.Resources = append(s.snap.Resources[:i:i], s.snap.Resources[i+1:]...)
			s.persist(KeyResources)
			return nil
		}
	}
	return notFound("resource", id)
}

// Schedule

func (s *Store) Schedule() []schedule.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]schedule.Item{}, s.snap.Schedule...)
}

func (s *Store) AddScheduleItem(it schedule.Item) schedule.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = s.newID()
	s.snap.Schedule = append(s.snap.Schedule, it)
	s.persist(KeySchedule)
	return it
}

func (s *Store) UpdateScheduleItem(id string, ni schedule.NewItem) (schedule.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.snap.Schedule {
		if it.ID == id {
			s.snap.Schedule[i] = ni.Apply(it)
			s.persist(KeySchedule)
			return s.snap.Schedule[i], nil
		}
	}
	return schedule.Item{}, notFound("schedule item", id)
}

func (s *Store) DeleteScheduleItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.snap.Schedule {
		if it.ID == id {
			s.snap.Schedule = append(s.snap.Schedule[:i:i], s.snap.Schedule[i+1:]...)
			s.persist(KeySchedule)
			return nil
		}
	}
	return notFound("schedule item", id)
}

// Profile

// Profile returns the profile. Its GPA is the overall GPA of the recorded grades, if any.
func (s *Store) Profile() profile.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileWithGPA()
}

func (s *Store) profileWithGPA() profile.UserProfile {
	p := s.snap.Profile.Copy()
	if len(grade.Subjects(s.snap.Grades)) > 0 {
		p.GPA.SetValid(grade.OverallGPA(s.snap.Grades))
	}
	return p
}

// UpdateProfile replaces the whole profile.
func (s *Store) UpdateProfile(p profile.UserProfile) profile.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Profile = p.Copy()
	s.persist(KeyProfile)
	return s.profileWithGPA()
}
