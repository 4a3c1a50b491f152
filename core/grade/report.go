package grade

// Bands used to colour percentages and GPAs.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

type SubjectReport struct {
	Subject    string  `json:"subject"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	GPA        float64 `json:"gpa"`
	Band       string  `json:"band"`
}

type Report struct {
	Subjects   []SubjectReport `json:"subjects"`
	OverallGPA float64         `json:"overallGpa"`
	GPABand    string          `json:"gpaBand"`
}

// Summarize computes the per-subject and overall indicators of `grades`.
func Summarize(grades []Grade) Report {
	subjects := Subjects(grades)
	rep := Report{Subjects: make([]SubjectReport, 0, len(subjects))}
	for _, s := range subjects {
		sg := OfSubject(grades, s)
		pct := WeightedPercentage(sg)
		rep.Subjects = append(rep.Subjects, SubjectReport{
			Subject:    s,
			Count:      len(sg),
			Percentage: pct,
			GPA:        PercentageToGPA(pct),
			Band:       Band(pct),
		})
	}
	rep.OverallGPA = OverallGPA(grades)
	rep.GPABand = GPABand(rep.OverallGPA)
	return rep
}

func Band(pct float64) string {
	switch {
	case pct >= 90:
		return BandExcellent
	case pct >= 80:
		return BandGood
	case pct >= 70:
		return BandFair
	default:
		return BandPoor
	}
}

func GPABand(gpa float64) string {
	switch {
	case gpa >= 3.5:
		return BandExcellent
	case gpa >= 3.0:
		return BandGood
	case gpa >= 2.5:
		return BandFair
	default:
		return BandPoor
	}
}
