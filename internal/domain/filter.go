package domain

// Filter selects which subset of the collection a view shows.
// It is process-wide UI state and is never persisted.
type Filter string

// Available filters.
const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter converts a string into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterPending, FilterCompleted:
		return Filter(s), nil
	default:
		return "", ErrInvalidFilter
	}
}

// Matches reports whether a task is visible under the filter.
func (f Filter) Matches(t *Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// DerivedView is the read-only projection the presentation layer renders:
// the visible subset plus counts over the full collection. Counts are
// independent of the active filter.
type DerivedView struct {
	Visible      []Task // Tasks matching the active filter
	PendingCount int    // Tasks with Completed == false, filter-independent
	TotalCount   int    // Full collection size, filter-independent
}

// DeriveView computes the projection of tasks under the given filter.
func DeriveView(tasks []Task, f Filter) DerivedView {
	view := DerivedView{
		Visible:    make([]Task, 0, len(tasks)),
		TotalCount: len(tasks),
	}
	for i := range tasks {
		if !tasks[i].Completed {
			view.PendingCount++
		}
		if f.Matches(&tasks[i]) {
			view.Visible = append(view.Visible, tasks[i])
		}
	}
	return view
}
