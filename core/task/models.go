package task

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/agenda/core"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Categories
const (
	CategoryAssignment = "assignment"
	CategoryExam       = "exam"
	CategoryProject    = "project"
	CategoryReading    = "reading"
	CategoryOther      = "other"
)

// Statuses accepted by QueryFilter.Status
const (
	StatusAll       = "all"
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

var (
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	Categories = []string{CategoryAssignment, CategoryExam, CategoryProject, CategoryReading, CategoryOther}

	priorityRanks = map[string]int{
		PriorityHigh:   3,
		PriorityMedium: 2,
		PriorityLow:    1,
	}
)

// PriorityRank orders priorities from high (3) to low (1). Unknown priorities rank 0.
func PriorityRank(priority string) int {
	return priorityRanks[priority]
}

type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Subject       string    `json:"subject"`
	Priority      string    `json:"priority"`
	DueDate       time.Time `json:"dueDate"`
	Completed     bool      `json:"completed"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	EstimatedTime null.Int  `json:"estimatedTime"` // minutes
	ActualTime    null.Int  `json:"actualTime"`    // minutes
}

func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate.Before(now)
}

// Copy returns a Task that shares no slice with `t`.
func (t Task) Copy() Task {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title         string    `json:"title" validate:"notblank"`
	Description   string    `json:"description"`
	Subject       string    `json:"subject" validate:"notblank"`
	Priority      string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate       time.Time `json:"dueDate" validate:"required"`
	Category      string    `json:"category" validate:"omitempty,oneof=assignment exam project reading other"`
	Tags          []string  `json:"tags"`
	EstimatedTime null.Int  `json:"estimatedTime" validate:"omitempty,gte=0"`
	ActualTime    null.Int  `json:"actualTime" validate:"omitempty,gte=0"`
}

func (nt *NewTask) Validate(validate *validator.Validate) error {
	nt.Title = core.CleanString(nt.Title)
	nt.Description = core.CleanString(nt.Description)
	nt.Subject = core.CleanString(nt.Subject)
	nt.Priority = core.CleanString(nt.Priority, true)
	nt.Category = core.CleanString(nt.Category, true)
	nt.Tags = core.CleanStrings(nt.Tags)
	return validate.Struct(nt)
}

// ToTask returns a pending Task built from the draft, without an ID.
func (nt NewTask) ToTask() Task {
	t := Task{
		Title:         nt.Title,
		Description:   nt.Description,
		Subject:       nt.Subject,
		Priority:      nt.Priority,
		DueDate:       nt.DueDate,
		Category:      nt.Category,
		Tags:          append([]string{}, nt.Tags...),
		EstimatedTime: nt.EstimatedTime,
		ActualTime:    nt.ActualTime,
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Category == "" {
		t.Category = CategoryAssignment
	}
	return t
}

type QueryFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Category string `query:"category"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return isAny(qf.Search) && isAny(qf.Status) && isAny(qf.Priority) && isAny(qf.Category)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true)
	qf.Priority = core.CleanString(qf.Priority, true)
	qf.Category = core.CleanString(qf.Category, true)
}

// isAny reports whether a filter value puts no constraint.
func isAny(v string) bool {
	return v == "" || v == StatusAll
}
