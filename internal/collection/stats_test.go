package collection

import (
	"testing"
	"time"

	"github.com/jyang234/taskdeck/internal/model"
)

// scenarioTasks mirrors a small mixed collection: one pending, one in
// progress, one completed.
func scenarioTasks() []model.Task {
	buy := fixtureTask("milk", "Buy milk", 0)
	buy.Priority = model.PriorityLow

	report := fixtureTask("report", "Write report", 40)
	report.Priority = model.PriorityHigh

	rent := fixtureTask("rent", "Pay rent", 100)
	rent.Priority = model.PriorityMedium

	return []model.Task{buy, report, rent}
}

func TestAggregateMixedCollection(t *testing.T) {
	stats := Aggregate(scenarioTasks())

	if stats.TotalTasks != 3 {
		t.Errorf("Expected 3 total, got %d", stats.TotalTasks)
	}
	if stats.CompletedTasks != 1 {
		t.Errorf("Expected 1 completed, got %d", stats.CompletedTasks)
	}
	if stats.InProgressTasks != 1 {
		t.Errorf("Expected 1 in progress, got %d", stats.InProgressTasks)
	}
	if stats.PendingTasks != 1 {
		t.Errorf("Expected 1 pending, got %d", stats.PendingTasks)
	}
	if stats.CompletionPercentage != 33 {
		t.Errorf("Expected 33%% completion, got %d", stats.CompletionPercentage)
	}
}

func TestAggregateEmptyCollection(t *testing.T) {
	stats := Aggregate(nil)
	if stats.TotalTasks != 0 || stats.CompletionPercentage != 0 {
		t.Errorf("Expected zero stats for empty collection, got %+v", stats)
	}
}

func TestAggregateRoundsHalfUp(t *testing.T) {
	// 2 of 3 complete is 66.67, which rounds to 67.
	tasks := []model.Task{
		fixtureTask("a", "A", 100),
		fixtureTask("b", "B", 100),
		fixtureTask("c", "C", 0),
	}
	if got := Aggregate(tasks).CompletionPercentage; got != 67 {
		t.Errorf("Expected 67, got %d", got)
	}
}

func TestAggregateAfterProgressUpdate(t *testing.T) {
	tasks := scenarioTasks()
	tasks, changed := UpdateProgress(tasks, "milk", 100)
	if !changed {
		t.Fatal("Expected update to apply")
	}

	stats := Aggregate(tasks)
	if stats.CompletedTasks != 2 {
		t.Errorf("Expected 2 completed, got %d", stats.CompletedTasks)
	}
	if stats.CompletionPercentage != 67 {
		t.Errorf("Expected 67%%, got %d", stats.CompletionPercentage)
	}
}

func TestAggregateOverdue(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	overdueOpen := fixtureTask("a", "Late and open", 40)
	overdueOpen.DueDate = now.Add(-48 * time.Hour)

	overdueDone := fixtureTask("b", "Late but done", 100)
	overdueDone.DueDate = now.Add(-48 * time.Hour)

	future := fixtureTask("c", "Plenty of time", 0)
	future.DueDate = now.Add(48 * time.Hour)

	stats := aggregateAt([]model.Task{overdueOpen, overdueDone, future}, now)
	if stats.OverdueTasks != 1 {
		t.Errorf("Expected 1 overdue (incomplete past due only), got %d", stats.OverdueTasks)
	}
}
