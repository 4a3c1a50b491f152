package grade

import "math"

// ScaleStep maps every percentage >= MinPercentage (and below the previous step) to Points.
type ScaleStep struct {
	MinPercentage float64 `json:"minPercentage"`
	Points        float64 `json:"points"`
}

// Scale is the 4.0 grading scale, ordered from the highest bound down.
var Scale = []ScaleStep{
	{MinPercentage: 97, Points: 4.0},
	{MinPercentage: 93, Points: 3.7},
	{MinPercentage: 90, Points: 3.3},
	{MinPercentage: 87, Points: 3.0},
	{MinPercentage: 83, Points: 2.7},
	{MinPercentage: 80, Points: 2.3},
	{MinPercentage: 77, Points: 2.0},
	{MinPercentage: 73, Points: 1.7},
	{MinPercentage: 70, Points: 1.3},
	{MinPercentage: 67, Points: 1.0},
	{MinPercentage: 65, Points: 0.7},
	{MinPercentage: math.Inf(-1), Points: 0.0},
}

// WeightedPercentage returns Σ(percentage×weight) / Σ(weight) over `grades`.
// It returns 0 for an empty set or a non-positive weight sum.
func WeightedPercentage(grades []Grade) float64 {
	var points, weights float64
	for _, g := range grades {
		points += g.Percentage() * g.Weight
		weights += g.Weight
	}
	if weights <= 0 {
		return 0
	}
	avg := points / weights
	if avg < 0 || math.IsNaN(avg) {
		return 0
	}
	return avg
}

// PercentageToGPA converts a percentage to grade points using Scale.
func PercentageToGPA(pct float64) float64 {
	for _, step := range Scale {
		if pct >= step.MinPercentage {
			return step.Points
		}
	}
	return 0 // NaN
}

// Subjects returns the distinct non-blank subjects of `grades` in first-seen order.
func Subjects(grades []Grade) []string {
	seen := make(map[string]struct{})
	subjects := make([]string, 0)
	for _, g := range grades {
		if g.Subject == "" {
			continue
		}
		if _, ok := seen[g.Subject]; !ok {
			seen[g.Subject] = struct{}{}
			subjects = append(subjects, g.Subject)
		}
	}
	return subjects
}

// OfSubject returns the grades recorded for `subject`.
func OfSubject(grades []Grade, subject string) []Grade {
	filtered := make([]Grade, 0)
	for _, g := range grades {
		if g.Subject == subject {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func SubjectGPA(grades []Grade, subject string) float64 {
	return PercentageToGPA(WeightedPercentage(OfSubject(grades, subject)))
}

// OverallGPA is the unweighted mean of the subject GPAs: every subject counts once,
// however many grades it holds.
func OverallGPA(grades []Grade) float64 {
	subjects := Subjects(grades)
	if len(subjects) == 0 {
		return 0
	}
	var total float64
	for _, s := range subjects {
		total += SubjectGPA(grades, s)
	}
	return total / float64(len(subjects))
}

// ProgressTowardTarget returns how far `current` is toward `target`, capped at 100.
// ok is false when no target is set.
func ProgressTowardTarget(current, target float64) (pct float64, ok bool) {
	if target <= 0 || math.IsNaN(target) {
		return 0, false
	}
	pct = current / target * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct, true
}
