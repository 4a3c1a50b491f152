package note

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/agenda/core"
)

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Subject   string    `json:"subject"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Copy returns a Note that shares no slice with `n`.
func (n Note) Copy() Note {
	if n.Tags != nil {
		n.Tags = append([]string(nil), n.Tags...)
	}
	return n
}

// NewNote contains information needed to create or edit a Note.
type NewNote struct {
	Title   string   `json:"title" validate:"notblank"`
	Content string   `json:"content" validate:"notblank"`
	Subject string   `json:"subject"`
	Tags    []string `json:"tags"`
}

func (nn *NewNote) Validate(validate *validator.Validate) error {
	nn.Title = core.CleanString(nn.Title)
	nn.Content = core.CleanString(nn.Content)
	nn.Subject = core.CleanString(nn.Subject)
	nn.Tags = CleanTags(nn.Tags)
	return validate.Struct(nn)
}

// ToNote returns a Note created (and last updated) at `now`, without an ID.
func (nn NewNote) ToNote(now time.Time) Note {
	return Note{
		Title:     nn.Title,
		Content:   nn.Content,
		Subject:   nn.Subject,
		Tags:      CleanTags(nn.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply returns `n` edited with the draft's contents at `now`. ID and CreatedAt are kept.
func (nn NewNote) Apply(n Note, now time.Time) Note {
	n.Title = nn.Title
	n.Content = nn.Content
	n.Subject = nn.Subject
	n.Tags = CleanTags(nn.Tags)
	n.UpdatedAt = now
	return n
}

// CleanTags trims tags, dropping blanks and duplicates. The first-seen order is kept.
func CleanTags(tags []string) []string {
	cleaned := core.CleanStrings(tags)
	if cleaned == nil {
		return []string{}
	}
	return cleaned
}

type QueryFilter struct {
	Search  string `query:"search"`
	Subject string `query:"subject"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Subject == "" || qf.Subject == "all")
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Subject = core.CleanString(qf.Subject)
}
