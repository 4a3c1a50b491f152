// Package persist round-trips the planner collections through a textual kv.Store.
// Every collection lives under its own key; instants are stored as RFC 3339 text and
// reconstructed on load, per collection.
package persist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/note"
	"github.com/trezcool/agenda/core/planner"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/resource"
	"github.com/trezcool/agenda/core/schedule"
	"github.com/trezcool/agenda/core/task"
	"github.com/trezcool/agenda/storage/kv"
)

const (
	DefaultPrefix  = "agenda-"
	DefaultTimeout = 2 * time.Second
)

var errUnknownCollection = errors.New("unknown collection")

type (
	Gateway struct {
		store   kv.Store
		log     core.Logger
		prefix  string
		timeout time.Duration
	}

	Option func(*Gateway)
)

var _ planner.Persister = (*Gateway)(nil) // interface compliance check

// WithPrefix namespaces every key, eg. "agenda-" stores tasks under "agenda-tasks".
func WithPrefix(prefix string) Option {
	return func(g *Gateway) { g.prefix = prefix }
}

// WithTimeout bounds every read and write to the medium.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

func New(store kv.Store, logger core.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		store:   store,
		log:     logger,
		prefix:  DefaultPrefix,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Key returns the medium key of a collection.
func (g *Gateway) Key(collection string) string {
	return g.prefix + collection
}

// Save writes `collection` under `key`. Failures are logged, never returned:
// the in-memory state stays authoritative.
func (g *Gateway) Save(key string, collection interface{}) {
	if err := g.save(key, collection); err != nil {
		g.log.Error("saving collection", "key", key, err)
	}
}

func (g *Gateway) save(key string, collection interface{}) error {
	text, err := Encode(collection)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()
	return g.store.Set(ctx, g.Key(key), text)
}

// Encode returns the stored text of one collection.
func Encode(collection interface{}) (string, error) {
	var v interface{}
	switch c := collection.(type) {
	case []task.Task:
		v = storeTasks(c)
	case []note.Note:
		v = storeNotes(c)
	case []grade.Grade:
		v = storeGrades(c)
	case profile.UserProfile:
		v = c
	case []schedule.Item:
		if c == nil {
			c = []schedule.Item{}
		}
		v = c
	case []resource.Resource:
		if c == nil {
			c = []resource.Resource{}
		}
		v = c
	default:
		return "", errors.Wrapf(errUnknownCollection, "%T", collection)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// load reads and decodes `key` into `v`. It reports whether `v` may be used.
func (g *Gateway) load(key string, v interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	text, err := g.store.Get(ctx, g.Key(key))
	if err != nil {
		if kv.IsNotFound(err) {
			g.log.Debug("collection not stored yet, using default", "key", key)
		} else {
			g.log.Warn("reading collection, using default", "key", key, err)
		}
		return false
	}
	if err = json.Unmarshal([]byte(text), v); err != nil {
		g.log.Warn("decoding collection, using default", "key", key, err)
		return false
	}
	return true
}

func (g *Gateway) invalid(key string, err error) {
	g.log.Warn("restoring collection, using default", "key", key, err)
}

// LoadTasks returns the stored tasks, or `def` if they are missing or unreadable.
func (g *Gateway) LoadTasks(def []task.Task) []task.Task {
	var stored []storedTask
	if !g.load(planner.KeyTasks, &stored) || stored == nil {
		return def
	}
	tasks := make([]task.Task, 0, len(stored))
	for _, st := range stored {
		t, err := st.task()
		if err != nil {
			g.invalid(planner.KeyTasks, err)
			return def
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (g *Gateway) LoadNotes(def []note.Note) []note.Note {
	var stored []storedNote
	if !g.load(planner.KeyNotes, &stored) || stored == nil {
		return def
	}
	notes := make([]note.Note, 0, len(stored))
	for _, sn := range stored {
		n, err := sn.note()
		if err != nil {
			g.invalid(planner.KeyNotes, err)
			return def
		}
		notes = append(notes, n)
	}
	return notes
}

func (g *Gateway) LoadGrades(def []grade.Grade) []grade.Grade {
	var stored []storedGrade
	if !g.load(planner.KeyGrades, &stored) || stored == nil {
		return def
	}
	grades := make([]grade.Grade, 0, len(stored))
	for _, sg := range stored {
		gr, err := sg.grade()
		if err != nil {
			g.invalid(planner.KeyGrades, err)
			return def
		}
		grades = append(grades, gr)
	}
	return grades
}

func (g *Gateway) LoadSchedule(def []schedule.Item) []schedule.Item {
	var items []schedule.Item
	if !g.load(planner.KeySchedule, &items) || items == nil {
		return def
	}
	return items
}

func (g *Gateway) LoadResources(def []resource.Resource) []resource.Resource {
	var resources []resource.Resource
	if !g.load(planner.KeyResources, &resources) || resources == nil {
		return def
	}
	return resources
}

// LoadProfile returns the stored profile. Fields it lacks keep their default value.
func (g *Gateway) LoadProfile(def profile.UserProfile) profile.UserProfile {
	var raw json.RawMessage
	if !g.load(planner.KeyProfile, &raw) || string(raw) == "null" {
		return def
	}
	p := profile.Default()
	if err := json.Unmarshal(raw, &p); err != nil {
		g.invalid(planner.KeyProfile, err)
		return def
	}
	return p.Copy()
}

// LoadAll loads every collection independently: one missing or unreadable collection
// falls back to its default without affecting the others.
func (g *Gateway) LoadAll(defaults planner.Snapshot) planner.Snapshot {
	return planner.Snapshot{
		Tasks:     g.LoadTasks(defaults.Tasks),
		Profile:   g.LoadProfile(defaults.Profile),
		Schedule:  g.LoadSchedule(defaults.Schedule),
		Notes:     g.LoadNotes(defaults.Notes),
		Resources: g.LoadResources(defaults.Resources),
		Grades:    g.LoadGrades(defaults.Grades),
	}
}
