package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jyang234/taskdeck/internal/model"
)

// dateLayout is the calendar-date format accepted on the command line.
const dateLayout = "2006-01-02"

// parseDate parses a --start/--due value at date precision, in UTC.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}

// validateTitle enforces the required-title rule before input reaches the
// collection engine.
func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("title must not be empty")
	}
	return title, nil
}

// validateDates enforces the due-after-start rule.
func validateDates(start, due time.Time) error {
	if due.Before(start) {
		return fmt.Errorf("due date %s is before start date %s",
			due.Format(dateLayout), start.Format(dateLayout))
	}
	return nil
}

// resolveTask finds the task a command-line reference points at. An exact
// id match wins; otherwise a prefix of at least 4 characters is accepted
// when it is unambiguous.
func resolveTask(tasks []model.Task, ref string) (model.Task, error) {
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}

	if len(ref) < 4 {
		return model.Task{}, fmt.Errorf("no task with id %q (prefixes need at least 4 characters)", ref)
	}

	var matches []model.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Task{}, fmt.Errorf("no task with id %q", ref)
	default:
		return model.Task{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// shortID returns the display form of a task id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
