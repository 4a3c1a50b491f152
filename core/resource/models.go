package resource

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/agenda/core"
)

// Types
const (
	TypeBook     = "book"
	TypeWebsite  = "website"
	TypeVideo    = "video"
	TypeDocument = "document"
	TypeOther    = "other"
)

const DefaultRating = 5

var Types = []string{TypeBook, TypeWebsite, TypeVideo, TypeDocument, TypeOther}

type Resource struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        string      `json:"type"`
	URL         null.String `json:"url"`
	Description string      `json:"description"`
	Subject     string      `json:"subject"`
	Rating      int         `json:"rating"` // 1-5
	Completed   bool        `json:"completed"`
}

// NewResource contains information needed to create or edit a Resource.
type NewResource struct {
	Title       string      `json:"title" validate:"notblank"`
	Type        string      `json:"type" validate:"omitempty,oneof=book website video document other"`
	URL         null.String `json:"url" validate:"omitempty,url"`
	Description string      `json:"description" validate:"notblank"`
	Subject     string      `json:"subject"`
	Rating      *int        `json:"rating" validate:"omitnil,min=1,max=5"`
}

func (nr *NewResource) Validate(validate *validator.Validate) error {
	nr.Title = core.CleanString(nr.Title)
	nr.Type = core.CleanString(nr.Type, true)
	nr.Description = core.CleanString(nr.Description)
	nr.Subject = core.CleanString(nr.Subject)
	if nr.URL.Valid {
		nr.URL.String = core.CleanString(nr.URL.String)
		nr.URL.Valid = nr.URL.String != ""
	}
	return validate.Struct(nr)
}

// ToResource returns a Resource not yet completed, without an ID.
// Type defaults to book and Rating to 5.
func (nr NewResource) ToResource() Resource {
	return nr.Apply(Resource{})
}

// Apply returns `r` edited with the draft's contents. ID and Completed are kept.
func (nr NewResource) Apply(r Resource) Resource {
	r.Title = nr.Title
	r.Type = nr.Type
	r.URL = nr.URL
	r.Description = nr.Description
	r.Subject = nr.Subject
	r.Rating = DefaultRating
	if nr.Rating != nil {
		r.Rating = *nr.Rating
	}
	if r.Type == "" {
		r.Type = TypeBook
	}
	return r
}

type QueryFilter struct {
	Search  string `query:"search"`
	Type    string `query:"type"`
	Subject string `query:"subject"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && isAny(qf.Type) && isAny(qf.Subject)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Type = core.CleanString(qf.Type, true)
	qf.Subject = core.CleanString(qf.Subject)
}

func isAny(v string) bool {
	return v == "" || v == "all"
}
