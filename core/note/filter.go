package note

import "github.com/trezcool/agenda/core"

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Note.Title, Note.Content or Note.Tags.
func Filter(notes []Note, qf QueryFilter) []Note {
	qf.Clean()
	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if qf.Matches(n) {
			filtered = append(filtered, n.Copy())
		}
	}
	return filtered
}

func (qf QueryFilter) Matches(n Note) bool {
	if qf.Subject != "" && qf.Subject != "all" && n.Subject != qf.Subject {
		return false
	}
	if qf.Search == "" || core.ContainsFold(n.Title, qf.Search) || core.ContainsFold(n.Content, qf.Search) {
		return true
	}
	for _, tag := range n.Tags {
		if core.ContainsFold(tag, qf.Search) {
			return true
		}
	}
	return false
}

// Subjects returns the distinct non-blank subjects of `notes` in first-seen order.
func Subjects(notes []Note) []string {
	subjects := make([]string, 0, len(notes))
	for _, n := range notes {
		subjects = append(subjects, n.Subject)
	}
	return core.CleanStrings(subjects)
}
