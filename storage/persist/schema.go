package persist

import (
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/agenda/core/grade"
	"github.com/trezcool/agenda/core/note"
	"github.com/trezcool/agenda/core/task"
)

// Stored records mirror the domain records with their instants flattened to text.
// Collections without instants (profile, schedule, resources) are stored as is.

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing %s", field)
	}
	return t, nil
}

type storedTask struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Subject       string   `json:"subject"`
	Priority      string   `json:"priority"`
	DueDate       string   `json:"dueDate"`
	Completed     bool     `json:"completed"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	EstimatedTime null.Int `json:"estimatedTime"`
	ActualTime    null.Int `json:"actualTime"`
}

func storeTasks(tasks []task.Task) []storedTask {
	stored := make([]storedTask, 0, len(tasks))
	for _, t := range tasks {
		stored = append(stored, storedTask{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Subject:       t.Subject,
			Priority:      t.Priority,
			DueDate:       formatTime(t.DueDate),
			Completed:     t.Completed,
			Category:      t.Category,
			Tags:          t.Tags,
			EstimatedTime: t.EstimatedTime,
			ActualTime:    t.ActualTime,
		})
	}
	return stored
}

func (st storedTask) task() (task.Task, error) {
	due, err := parseTime("dueDate", st.DueDate)
	if err != nil {
		return task.Task{}, errors.Wrapf(err, "task %q", st.ID)
	}
	t := task.Task{
		ID:            st.ID,
		Title:         st.Title,
		Description:   st.Description,
		Subject:       st.Subject,
		Priority:      st.Priority,
		DueDate:       due,
		Completed:     st.Completed,
		Category:      st.Category,
		Tags:          st.Tags,
		EstimatedTime: st.EstimatedTime,
		ActualTime:    st.ActualTime,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, nil
}

type storedNote struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Subject   string   `json:"subject"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func storeNotes(notes []note.Note) []storedNote {
	stored := make([]storedNote, 0, len(notes))
	for _, n := range notes {
		stored = append(stored, storedNote{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Subject:   n.Subject,
			Tags:      n.Tags,
			CreatedAt: formatTime(n.CreatedAt),
			UpdatedAt: formatTime(n.UpdatedAt),
		})
	}
	return stored
}

func (sn storedNote) note() (note.Note, error) {
	created, err := parseTime("createdAt", sn.CreatedAt)
	if err != nil {
		return note.Note{}, errors.Wrapf(err, "note %q", sn.ID)
	}
	updated, err := parseTime("updatedAt", sn.UpdatedAt)
	if err != nil {
		return note.Note{}, errors.Wrapf(err, "note %q", sn.ID)
	}
	n := note.Note{
		ID:        sn.ID,
		Title:     sn.Title,
		Content:   sn.Content,
		Subject:   sn.Subject,
		Tags:      sn.Tags,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n, nil
}

type storedGrade struct {
	ID         string  `json:"id"`
	Subject    string  `json:"subject"`
	Assignment string  `json:"assignment"`
	Grade      float64 `json:"grade"`
	MaxGrade   float64 `json:"maxGrade"`
	Weight     float64 `json:"weight"`
	Date       string  `json:"date"`
}

func storeGrades(grades []grade.Grade) []storedGrade {
	stored := make([]storedGrade, 0, len(grades))
	for _, g := range grades {
		stored = append(stored, storedGrade{
			ID:         g.ID,
			Subject:    g.Subject,
			Assignment: g.Assignment,
			Grade:      g.Grade,
			MaxGrade:   g.MaxGrade,
			Weight:     g.Weight,
			Date:       formatTime(g.Date),
		})
	}
	return stored
}

func (sg storedGrade) grade() (grade.Grade, error) {
	date, err := parseTime("date", sg.Date)
	if err != nil {
		return grade.Grade{}, errors.Wrapf(err, "grade %q", sg.ID)
	}
	return grade.Grade{
		ID:         sg.ID,
		Subject:    sg.Subject,
		Assignment: sg.Assignment,
		Grade:      sg.Grade,
		MaxGrade:   sg.MaxGrade,
		Weight:     sg.Weight,
		Date:       date,
	}, nil
}
