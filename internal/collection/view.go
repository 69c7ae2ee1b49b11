package collection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jyang234/taskdeck/internal/model"
)

// SortKey selects the field a view is ordered by.
type SortKey string

const (
	SortAlphabetical SortKey = "alphabetical"
	SortStartDate    SortKey = "start_date"
	SortDueDate      SortKey = "due_date"
	SortCompletion   SortKey = "completion"
	SortPriority     SortKey = "priority"
)

// SortOrder flips the direction of a sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// StatusAll is the sentinel filter value that keeps every status.
const StatusAll = "all"

// ParseSortKey validates a sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortAlphabetical, SortStartDate, SortDueDate, SortCompletion, SortPriority:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ParseSortOrder validates a sort order string.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case OrderAsc, OrderDesc:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// View parameterizes the three-stage search/filter/sort pipeline.
// A zero Search matches everything; an empty or "all" Status keeps every
// task.
type View struct {
	Search string
	Status string
	Sort   SortKey
	Order  SortOrder
}

// ApplyView runs search, status filter, and sort over the collection and
// returns a new display-ordered slice. The input snapshot is not modified.
func ApplyView(tasks []model.Task, v View) []model.Task {
	out := make([]model.Task, 0, len(tasks))

	query := strings.ToLower(strings.TrimSpace(v.Search))
	for _, t := range tasks {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		if v.Status != "" && v.Status != StatusAll && string(t.Status) != v.Status {
			continue
		}
		out = append(out, t)
	}

	sortTasks(out, v.Sort, v.Order)
	return out
}

// sortTasks orders the slice in place by the given key. Each comparator
// yields its natural ascending order except priority, which weighs high
// above low before the order flag is applied, so "asc" lists high first.
func sortTasks(tasks []model.Task, key SortKey, order SortOrder) {
	var cmp func(a, b model.Task) int

	switch key {
	case SortStartDate:
		cmp = func(a, b model.Task) int { return a.StartDate.Compare(b.StartDate) }
	case SortDueDate:
		cmp = func(a, b model.Task) int { return a.DueDate.Compare(b.DueDate) }
	case SortCompletion:
		cmp = func(a, b model.Task) int { return a.CompletionPercentage - b.CompletionPercentage }
	case SortPriority:
		cmp = func(a, b model.Task) int { return b.Priority.Rank() - a.Priority.Rank() }
	default:
		cmp = func(a, b model.Task) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		c := cmp(tasks[i], tasks[j])
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
}
