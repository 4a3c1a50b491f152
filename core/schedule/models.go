package schedule

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/agenda/core"
)

// Weekdays lists the day names in week order, Monday first.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

type Item struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Classroom string `json:"classroom"`
	Professor string `json:"professor"`
}

// NewItem contains information needed to create or edit an Item.
// StartTime is not required to be before EndTime.
type NewItem struct {
	Subject   string `json:"subject" validate:"notblank"`
	Day       string `json:"day" validate:"required,weekday"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
	Classroom string `json:"classroom"`
	Professor string `json:"professor"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Subject = core.CleanString(ni.Subject)
	ni.Day = NormalizeDay(ni.Day)
	ni.StartTime = core.CleanString(ni.StartTime)
	ni.EndTime = core.CleanString(ni.EndTime)
	ni.Classroom = core.CleanString(ni.Classroom)
	ni.Professor = core.CleanString(ni.Professor)
	return validate.Struct(ni)
}

// ToItem returns the Item described by the draft, without an ID.
func (ni NewItem) ToItem() Item {
	return ni.Apply(Item{})
}

// Apply returns `it` edited with the draft's contents. The ID is kept.
func (ni NewItem) Apply(it Item) Item {
	it.Subject = ni.Subject
	it.Day = ni.Day
	it.StartTime = ni.StartTime
	it.EndTime = ni.EndTime
	it.Classroom = ni.Classroom
	it.Professor = ni.Professor
	return it
}

// NormalizeDay returns the canonical weekday name of `day` ("monday" -> "Monday"),
// or `day` trimmed if it is not a weekday.
func NormalizeDay(day string) string {
	day = core.CleanString(day)
	for _, wd := range Weekdays {
		if strings.EqualFold(wd, day) {
			return wd
		}
	}
	return day
}
