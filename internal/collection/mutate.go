package collection

import (
	"time"

	"github.com/jyang234/taskdeck/internal/model"
)

// Create appends a freshly constructed task to the collection and returns
// the new snapshot together with the created task.
func Create(tasks []model.Task, in model.CreateInput) ([]model.Task, model.Task) {
	task := model.NewTask(in)
	out := make([]model.Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return append(out, task), task
}

// Delete removes the task with the given id. The second return value is
// false when the id was not present and the input snapshot is returned
// unchanged.
func Delete(tasks []model.Task, id string) ([]model.Task, bool) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, false
	}
	out := make([]model.Task, 0, len(tasks)-1)
	out = append(out, tasks[:idx]...)
	out = append(out, tasks[idx+1:]...)
	return out, true
}

// ToggleComplete flips the completion flag of the task with the given id.
// Completing forces progress to 100; un-completing keeps the prior
// progress value and re-derives the status from it.
func ToggleComplete(tasks []model.Task, id string) ([]model.Task, bool) {
	return replace(tasks, id, func(t model.Task) model.Task {
		if t.IsCompleted {
			t.IsCompleted = false
			if t.CompletionPercentage > 0 {
				t.Status = model.StatusInProgress
			} else {
				t.Status = model.StatusPending
			}
		} else {
			t.IsCompleted = true
			t.CompletionPercentage = 100
			t.Status = model.StatusCompleted
		}
		return t
	})
}

// UpdateProgress sets the completion percentage of the task with the given
// id and re-derives status and the completion flag. The caller must have
// validated progress to [0,100] already.
func UpdateProgress(tasks []model.Task, id string, progress int) ([]model.Task, bool) {
	return replace(tasks, id, func(t model.Task) model.Task {
		t.CompletionPercentage = progress
		t.Status = model.StatusForProgress(progress)
		t.IsCompleted = progress == 100
		return t
	})
}

// UpdateFields carries the optional field edits applied by Update. Nil
// pointers leave the corresponding field untouched.
type UpdateFields struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	Category    *model.Category
	Priority    *model.Priority
}

// Update edits the descriptive fields of the task with the given id.
// Progress, status, and the completion flag are not touched; use
// UpdateProgress or ToggleComplete for those.
func Update(tasks []model.Task, id string, fields UpdateFields) ([]model.Task, bool) {
	return replace(tasks, id, func(t model.Task) model.Task {
		if fields.Title != nil {
			t.Title = *fields.Title
		}
		if fields.Description != nil {
			t.Description = *fields.Description
		}
		if fields.StartDate != nil {
			t.StartDate = *fields.StartDate
		}
		if fields.DueDate != nil {
			t.DueDate = *fields.DueDate
		}
		if fields.Category != nil {
			t.Category = *fields.Category
		}
		if fields.Priority != nil {
			t.Priority = *fields.Priority
		}
		return t
	})
}

// replace applies fn to the task with the given id and returns a new
// snapshot with the replacement entry and a refreshed updatedAt. The input
// snapshot is never modified.
func replace(tasks []model.Task, id string, fn func(model.Task) model.Task) ([]model.Task, bool) {
	idx := indexOf(tasks, id)
	if idx < 0 {
		return tasks, false
	}
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	updated := fn(out[idx])
	updated.UpdatedAt = time.Now().UTC()
	out[idx] = updated
	return out, true
}

func indexOf(tasks []model.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
