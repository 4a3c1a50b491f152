package schedule

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/agenda/core"
)

var (
	hhmmTag  = "hhmm"
	hhmmText = "time must be formatted as HH:MM"

	weekdayTag  = "weekday"
	weekdayText = "invalid day of the week"
)

// InitValidators registers the schedule validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(hhmmTag, hhmmValidation)
	core.RegisterCustomTranslation(validate, translator, hhmmTag, hhmmText)

	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)
}

// hhmmValidation accepts a 24-hour wall-clock time ("08:30", "23:59").
func hhmmValidation(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok || len(s) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

func weekdayValidation(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, wd := range Weekdays {
		if s == wd {
			return true
		}
	}
	return false
}
