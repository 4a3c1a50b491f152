package grade

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/agenda/core"
)

const (
	DefaultMaxGrade = 100
	DefaultWeight   = 1
)

type Grade struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Assignment string    `json:"assignment"`
	Grade      float64   `json:"grade"`
	MaxGrade   float64   `json:"maxGrade"`
	Weight     float64   `json:"weight"`
	Date       time.Time `json:"date"`
}

// Percentage returns grade/maxGrade*100. It is not clamped: extra credit may exceed 100.
func (g Grade) Percentage() float64 {
	if g.MaxGrade <= 0 {
		return 0
	}
	return g.Grade / g.MaxGrade * 100
}

// NewGrade contains information needed to record a new Grade.
// MaxGrade and Weight default to 100 and 1 when omitted.
type NewGrade struct {
	Subject    string    `json:"subject" validate:"notblank"`
	Assignment string    `json:"assignment" validate:"notblank"`
	Grade      *float64  `json:"grade" validate:"required,gte=0"`
	MaxGrade   *float64  `json:"maxGrade" validate:"omitnil,gt=0"`
	Weight     *float64  `json:"weight" validate:"omitnil,gt=0"`
	Date       time.Time `json:"date"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	ng.Subject = core.CleanString(ng.Subject)
	ng.Assignment = core.CleanString(ng.Assignment)
	return validate.Struct(ng)
}

// ToGrade returns the record described by the draft, without an ID.
func (ng NewGrade) ToGrade() Grade {
	g := Grade{
		Subject:    ng.Subject,
		Assignment: ng.Assignment,
		MaxGrade:   DefaultMaxGrade,
		Weight:     DefaultWeight,
		Date:       ng.Date,
	}
	if ng.Grade != nil {
		g.Grade = *ng.Grade
	}
	if ng.MaxGrade != nil {
		g.MaxGrade = *ng.MaxGrade
	}
	if ng.Weight != nil {
		g.Weight = *ng.Weight
	}
	return g
}
