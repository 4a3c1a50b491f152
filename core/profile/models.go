package profile

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/agenda/core"
)

// Genders
const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderOther  = "other"
)

const DefaultTheme = "light"

// UserProfile is the single profile of the installation.
type UserProfile struct {
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Career           string       `json:"career"`
	Semester         string       `json:"semester"`
	University       string       `json:"university"`
	Avatar           string       `json:"avatar"`
	Bio              string       `json:"bio"`
	Goals            []string     `json:"goals"`
	StudyHours       float64      `json:"studyHours"`
	FavoriteSubjects []string     `json:"favoriteSubjects"`
	Gender           string       `json:"gender"`
	GPA              null.Float64 `json:"gpa"`
	TargetGPA        null.Float64 `json:"targetGPA"`
	Notifications    bool         `json:"notifications"`
	Theme            string       `json:"theme"`
}

// Default returns the empty profile a fresh installation starts with.
func Default() UserProfile {
	return UserProfile{
		Goals:            []string{},
		FavoriteSubjects: []string{},
		Gender:           GenderOther,
		Notifications:    true,
		Theme:            DefaultTheme,
	}
}

// Copy returns a UserProfile that shares no slice with `p`.
func (p UserProfile) Copy() UserProfile {
	p.Goals = append([]string{}, p.Goals...)
	p.FavoriteSubjects = append([]string{}, p.FavoriteSubjects...)
	return p
}

// IsComplete reports whether the profile has been filled in.
func (p UserProfile) IsComplete() bool {
	return p.Name != ""
}

// UpdateProfile replaces the whole profile.
type UpdateProfile struct {
	Name             string       `json:"name"`
	Email            string       `json:"email" validate:"omitempty,email"`
	Career           string       `json:"career"`
	Semester         string       `json:"semester"`
	University       string       `json:"university"`
	Avatar           string       `json:"avatar"`
	Bio              string       `json:"bio"`
	Goals            []string     `json:"goals"`
	StudyHours       float64      `json:"studyHours" validate:"gte=0"`
	FavoriteSubjects []string     `json:"favoriteSubjects"`
	Gender           string       `json:"gender" validate:"omitempty,oneof=female male other"`
	GPA              null.Float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	TargetGPA        null.Float64 `json:"targetGPA" validate:"omitempty,gt=0,lte=4"`
	Notifications    bool         `json:"notifications"`
	Theme            string       `json:"theme"`
}

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.Name = core.CleanString(up.Name)
	up.Email = core.CleanString(up.Email, true)
	up.Career = core.CleanString(up.Career)
	up.Semester = core.CleanString(up.Semester)
	up.University = core.CleanString(up.University)
	up.Bio = core.CleanString(up.Bio)
	up.Gender = core.CleanString(up.Gender, true)
	up.Theme = core.CleanString(up.Theme)
	up.Goals = core.CleanStrings(up.Goals)
	up.FavoriteSubjects = core.CleanStrings(up.FavoriteSubjects)
	return validate.Struct(up)
}

// ToProfile returns the profile described by the draft.
// Gender defaults to other and Theme to light.
func (up UpdateProfile) ToProfile() UserProfile {
	p := UserProfile{
		Name:             up.Name,
		Email:            up.Email,
		Career:           up.Career,
		Semester:         up.Semester,
		University:       up.University,
		Avatar:           up.Avatar,
		Bio:              up.Bio,
		Goals:            append([]string{}, up.Goals...),
		StudyHours:       up.StudyHours,
		FavoriteSubjects: append([]string{}, up.FavoriteSubjects...),
		Gender:           up.Gender,
		GPA:              up.GPA,
		TargetGPA:        up.TargetGPA,
		Notifications:    up.Notifications,
		Theme:            up.Theme,
	}
	if p.Gender == "" {
		p.Gender = GenderOther
	}
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	return p
}
