package collection

import (
	"testing"
	"time"

	"github.com/jyang234/taskdeck/internal/model"
)

func fixtureTask(id, title string, progress int) model.Task {
	now := time.Now().UTC().Add(-time.Hour)
	return model.Task{
		ID:                   id,
		Title:                title,
		StartDate:            now,
		DueDate:              now.Add(24 * time.Hour),
		CompletionPercentage: progress,
		Status:               model.StatusForProgress(progress),
		Category:             model.CategoryWork,
		Priority:             model.PriorityMedium,
		IsCompleted:          progress == 100,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestCreateAppends(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 0)}

	out, created := Create(tasks, model.CreateInput{
		Title:    "Second",
		Category: model.CategoryPersonal,
		Priority: model.PriorityLow,
	})

	if len(out) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(out))
	}
	if out[1].ID != created.ID {
		t.Error("Expected created task to be appended last")
	}
	if created.Status != model.StatusPending || created.CompletionPercentage != 0 {
		t.Errorf("Expected fresh task pending at 0%%, got %s at %d%%",
			created.Status, created.CompletionPercentage)
	}
	if len(tasks) != 1 {
		t.Errorf("Expected input snapshot unchanged, got %d tasks", len(tasks))
	}
}

func TestDeleteIdempotent(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 0), fixtureTask("b", "Second", 40)}

	out, changed := Delete(tasks, "a")
	if !changed {
		t.Fatal("Expected delete to report a change")
	}
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("Expected only task b to remain, got %v", out)
	}

	// Second delete of the same id is a no-op.
	again, changed := Delete(out, "a")
	if changed {
		t.Error("Expected second delete to be a no-op")
	}
	if len(again) != 1 {
		t.Errorf("Expected collection unchanged, got %d tasks", len(again))
	}
}

func TestToggleCompleteFromProgress(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 40)}

	out, changed := ToggleComplete(tasks, "a")
	if !changed {
		t.Fatal("Expected toggle to report a change")
	}
	got := out[0]
	if !got.IsCompleted || got.Status != model.StatusCompleted || got.CompletionPercentage != 100 {
		t.Errorf("Expected completed at 100%%, got %s at %d%% (completed=%v)",
			got.Status, got.CompletionPercentage, got.IsCompleted)
	}

	// Un-toggling keeps the (now forced) percentage and re-derives status.
	out, _ = ToggleComplete(out, "a")
	got = out[0]
	if got.IsCompleted {
		t.Error("Expected isCompleted false after second toggle")
	}
	if got.CompletionPercentage != 100 {
		t.Errorf("Expected percentage kept at 100, got %d", got.CompletionPercentage)
	}
	if got.Status != model.StatusInProgress {
		t.Errorf("Expected in_progress with nonzero percentage, got %s", got.Status)
	}
}

func TestToggleCompleteAtZeroForces100(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 0)}

	out, _ := ToggleComplete(tasks, "a")
	got := out[0]
	if got.CompletionPercentage != 100 || got.Status != model.StatusCompleted {
		t.Errorf("Expected completing a 0%% task to force 100%%, got %d%% %s",
			got.CompletionPercentage, got.Status)
	}
	if tasks[0].CompletionPercentage != 0 {
		t.Error("Expected input snapshot unchanged")
	}
}

func TestToggleCompleteBackToPending(t *testing.T) {
	task := fixtureTask("a", "First", 0)
	task.IsCompleted = true
	task.Status = model.StatusCompleted
	// Percentage deliberately left at 0 to exercise the pending branch.

	out, _ := ToggleComplete([]model.Task{task}, "a")
	if out[0].Status != model.StatusPending {
		t.Errorf("Expected pending after un-toggling at 0%%, got %s", out[0].Status)
	}
}

func TestToggleCompleteInvolution(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 40)}

	once, _ := ToggleComplete(tasks, "a")
	twice, _ := ToggleComplete(once, "a")

	before, after := tasks[0], twice[0]
	if after.IsCompleted != before.IsCompleted {
		t.Error("Expected double toggle to restore isCompleted")
	}
	if after.ID != before.ID || after.Title != before.Title || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("Expected identity fields to survive toggling")
	}
}

func TestUpdateProgress(t *testing.T) {
	tests := []struct {
		progress      int
		wantStatus    model.Status
		wantCompleted bool
	}{
		{0, model.StatusPending, false},
		{40, model.StatusInProgress, false},
		{100, model.StatusCompleted, true},
	}

	for _, tt := range tests {
		tasks := []model.Task{fixtureTask("a", "First", 50), fixtureTask("b", "Second", 10)}
		out, changed := UpdateProgress(tasks, "a", tt.progress)
		if !changed {
			t.Fatalf("progress=%d: expected a change", tt.progress)
		}
		got := out[0]
		if got.CompletionPercentage != tt.progress || got.Status != tt.wantStatus || got.IsCompleted != tt.wantCompleted {
			t.Errorf("progress=%d: got %d%% %s completed=%v",
				tt.progress, got.CompletionPercentage, got.Status, got.IsCompleted)
		}
		if !got.UpdatedAt.After(tasks[0].UpdatedAt) {
			t.Errorf("progress=%d: expected updatedAt to be refreshed", tt.progress)
		}
		// The sibling task must be untouched.
		if out[1] != tasks[1] {
			t.Errorf("progress=%d: expected other task unchanged", tt.progress)
		}
	}
}

func TestMutationsMissingIDAreNoOps(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 40)}

	if out, changed := UpdateProgress(tasks, "nope", 80); changed || len(out) != 1 || out[0] != tasks[0] {
		t.Error("Expected UpdateProgress on missing id to be a no-op")
	}
	if out, changed := ToggleComplete(tasks, "nope"); changed || out[0] != tasks[0] {
		t.Error("Expected ToggleComplete on missing id to be a no-op")
	}
	if out, changed := Update(tasks, "nope", UpdateFields{}); changed || out[0] != tasks[0] {
		t.Error("Expected Update on missing id to be a no-op")
	}
}

func TestUpdateFields(t *testing.T) {
	tasks := []model.Task{fixtureTask("a", "First", 40)}

	title := "Renamed"
	prio := model.PriorityHigh
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	out, changed := Update(tasks, "a", UpdateFields{Title: &title, Priority: &prio, DueDate: &due})
	if !changed {
		t.Fatal("Expected a change")
	}
	got := out[0]
	if got.Title != "Renamed" || got.Priority != model.PriorityHigh || !got.DueDate.Equal(due) {
		t.Errorf("Unexpected edit result: %+v", got)
	}
	if got.Description != tasks[0].Description || got.CompletionPercentage != 40 {
		t.Error("Expected untouched fields to be preserved")
	}
	if tasks[0].Title != "First" {
		t.Error("Expected input snapshot unchanged")
	}
}
