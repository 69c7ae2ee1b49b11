package model

import (
	"testing"
	"time"
)

func TestNewTaskDefaults(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	task := NewTask(CreateInput{
		Title:       "Write report",
		Description: "Quarterly numbers",
		StartDate:   start,
		DueDate:     due,
		Category:    CategoryWork,
		Priority:    PriorityHigh,
	})

	if task.ID == "" {
		t.Error("Expected a generated id")
	}
	if task.CompletionPercentage != 0 {
		t.Errorf("Expected 0 progress, got %d", task.CompletionPercentage)
	}
	if task.Status != StatusPending {
		t.Errorf("Expected pending status, got %s", task.Status)
	}
	if task.IsCompleted {
		t.Error("Expected isCompleted false")
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("Expected createdAt == updatedAt, got %v and %v", task.CreatedAt, task.UpdatedAt)
	}
	if !task.StartDate.Equal(start) || !task.DueDate.Equal(due) {
		t.Error("Expected input dates to be preserved")
	}
}

func TestNewTaskUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask(CreateInput{Title: "t", Category: CategoryOther, Priority: PriorityLow})
		if seen[task.ID] {
			t.Fatalf("Duplicate id generated: %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestStatusForProgress(t *testing.T) {
	tests := []struct {
		progress int
		want     Status
	}{
		{0, StatusPending},
		{1, StatusInProgress},
		{50, StatusInProgress},
		{99, StatusInProgress},
		{100, StatusCompleted},
	}

	for _, tt := range tests {
		if got := StatusForProgress(tt.progress); got != tt.want {
			t.Errorf("StatusForProgress(%d) = %s, want %s", tt.progress, got, tt.want)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() != 3 || PriorityMedium.Rank() != 2 || PriorityLow.Rank() != 1 {
		t.Errorf("Unexpected ranks: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseStatus("in_progress"); err != nil {
		t.Errorf("ParseStatus failed on valid value: %v", err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("Expected error for unknown status")
	}
	if _, err := ParseCategory("urgent"); err != nil {
		t.Errorf("ParseCategory failed on valid value: %v", err)
	}
	if _, err := ParseCategory("hobby"); err == nil {
		t.Error("Expected error for unknown category")
	}
	if _, err := ParsePriority("medium"); err != nil {
		t.Errorf("ParsePriority failed on valid value: %v", err)
	}
	if _, err := ParsePriority("critical"); err == nil {
		t.Error("Expected error for unknown priority")
	}
}

func TestTaskValidate(t *testing.T) {
	now := time.Now().UTC()
	valid := Task{
		ID:       "abc",
		Title:    "t",
		Status:   StatusPending,
		Category: CategoryWork,
		Priority: PriorityLow,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid task, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Task)
	}{
		{"empty id", func(task *Task) { task.ID = "" }},
		{"bad status", func(task *Task) { task.Status = "archived" }},
		{"bad category", func(task *Task) { task.Category = "misc" }},
		{"bad priority", func(task *Task) { task.Priority = "extreme" }},
		{"progress above range", func(task *Task) { task.CompletionPercentage = 101 }},
		{"progress below range", func(task *Task) { task.CompletionPercentage = -1 }},
		{"updatedAt before createdAt", func(task *Task) { task.UpdatedAt = now.Add(-time.Hour) }},
	}

	for _, tt := range tests {
		task := valid
		tt.mutate(&task)
		if err := task.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
