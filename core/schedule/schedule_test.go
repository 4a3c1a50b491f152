package schedule

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/core"
)

func newValidator() (*validator.Validate, func(error) map[string]string) {
	validate, translator := core.NewValidator()
	InitValidators(validate, translator)
	return validate, func(err error) map[string]string {
		var vErrs validator.ValidationErrors
		if errors, ok := err.(validator.ValidationErrors); ok {
			vErrs = errors
		}
		return core.TranslateErrors(vErrs, translator)
	}
}

func TestNewItem_Validate(t *testing.T) {
	validate, translate := newValidator()

	tests := []struct {
		name    string
		ni      NewItem
		wantDay string
		wantErr map[string]string
	}{
		{name: "valid", ni: NewItem{Subject: "Math", Day: "Monday", StartTime: "08:00", EndTime: "09:30"}, wantDay: "Monday"},
		{name: "day is normalized", ni: NewItem{Subject: "Math", Day: " friday", StartTime: "23:00", EndTime: "23:59"}, wantDay: "Friday"},
		{name: "end before start is allowed", ni: NewItem{Subject: "Math", Day: "Sunday", StartTime: "10:00", EndTime: "09:00"}, wantDay: "Sunday"},
		{
			name:    "missing fields",
			ni:      NewItem{Subject: " "},
			wantErr: map[string]string{"subject": "this field cannot be blank", "day": "this field is required", "startTime": "this field is required", "endTime": "this field is required"},
		},
		{
			name:    "invalid values",
			ni:      NewItem{Subject: "Math", Day: "Lunes", StartTime: "8:00", EndTime: "24:00"},
			wantErr: map[string]string{"day": "invalid day of the week", "startTime": "time must be formatted as HH:MM", "endTime": "time must be formatted as HH:MM"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ni.Validate(validate)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.wantDay, tt.ni.Day)
				return
			}
			assert.Equal(t, tt.wantErr, translate(err))
		})
	}
}

func TestNewItem_Apply(t *testing.T) {
	it := NewItem{Subject: "Math", Day: "Monday", StartTime: "08:00", EndTime: "09:00", Classroom: "B12"}.ToItem()
	it.ID = "s1"
	it = NewItem{Subject: "Physics", Day: "Tuesday", StartTime: "10:00", EndTime: "11:00"}.Apply(it)
	assert.Equal(t, Item{ID: "s1", Subject: "Physics", Day: "Tuesday", StartTime: "10:00", EndTime: "11:00"}, it)
}

func TestByDay(t *testing.T) {
	items := []Item{
		{ID: "late", Day: "Monday", StartTime: "14:00"},
		{ID: "early", Day: "Monday", StartTime: "08:00"},
		{ID: "wed", Day: "Wednesday", StartTime: "10:00"},
		{ID: "noon", Day: "Monday", StartTime: "12:00"},
	}

	days := ByDay(items)
	require.Len(t, days, 7)
	assert.Equal(t, "Monday", days[0].Day)
	assert.Equal(t, "Sunday", days[6].Day)

	var monday []string
	for _, it := range days[0].Items {
		monday = append(monday, it.ID)
	}
	assert.Equal(t, []string{"early", "noon", "late"}, monday)
	assert.Len(t, days[2].Items, 1)
	assert.Empty(t, days[1].Items)
	assert.NotNil(t, days[1].Items)

	// 2025-01-01 is a Wednesday
	today := Today(items, time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC))
	require.Len(t, today, 1)
	assert.Equal(t, "wed", today[0].ID)
}
