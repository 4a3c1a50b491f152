package persist

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/agenda/core/planner"
	"github.com/trezcool/agenda/core/profile"
	"github.com/trezcool/agenda/core/resource"
	"github.com/trezcool/agenda/core/schedule"
)

type exportDoc struct {
	Tasks      []storedTask        `json:"tasks"`
	Profile    profile.UserProfile `json:"profile"`
	Schedule   []schedule.Item     `json:"schedule"`
	Notes      []storedNote        `json:"notes"`
	Resources  []resource.Resource `json:"resources"`
	Grades     []storedGrade       `json:"grades"`
	ExportDate string              `json:"exportDate"`
}

// ExportFilename returns the name of an export made at `at`.
func ExportFilename(at time.Time) string {
	return "agenda-export-" + at.Format("2006-01-02") + ".json"
}

// Export returns one JSON document holding every collection, with the collections
// encoded as they are stored, and the export date.
func Export(snap planner.Snapshot, at time.Time) ([]byte, error) {
	snap = snap.Copy()
	doc := exportDoc{
		Tasks:      storeTasks(snap.Tasks),
		Profile:    snap.Profile,
		Schedule:   snap.Schedule,
		Notes:      storeNotes(snap.Notes),
		Resources:  snap.Resources,
		Grades:     storeGrades(snap.Grades),
		ExportDate: formatTime(at),
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding export")
	}
	return b, nil
}

func WriteExport(w io.Writer, snap planner.Snapshot, at time.Time) error {
	b, err := Export(snap, at)
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return errors.Wrap(err, "writing export")
	}
	return nil
}
