package resource

import "github.com/trezcool/agenda/core"

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Resource.Title, Resource.Description
// or Resource.Subject.
func Filter(resources []Resource, qf QueryFilter) []Resource {
	qf.Clean()
	filtered := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if qf.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (qf QueryFilter) Matches(r Resource) bool {
	return (qf.Search == "" ||
		core.ContainsFold(r.Title, qf.Search) ||
		core.ContainsFold(r.Description, qf.Search) ||
		core.ContainsFold(r.Subject, qf.Search)) &&
		(isAny(qf.Type) || r.Type == qf.Type) &&
		(isAny(qf.Subject) || r.Subject == qf.Subject)
}

// Subjects returns the distinct non-blank subjects of `resources` in first-seen order.
func Subjects(resources []Resource) []string {
	subjects := make([]string, 0, len(resources))
	for _, r := range resources {
		subjects = append(subjects, r.Subject)
	}
	return core.CleanStrings(subjects)
}
