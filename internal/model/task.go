// Package model defines the task record and its closed classification
// enums. Status is derived from progress and the completion flag; nothing
// outside this package should set it directly.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the derived three-state lifecycle label of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Category classifies a task for display grouping.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
	CategoryOther    Category = "other"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank maps every priority to its comparison weight. Keep this
// exhaustive: Rank returns 0 for anything missing here, and ParsePriority
// rejects unknown values before they can reach a comparator.
var priorityRank = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Rank returns the comparison weight of the priority (high=3, medium=2, low=1).
func (p Priority) Rank() int {
	return priorityRank[p]
}

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryWork, CategoryPersonal, CategoryUrgent, CategoryOther:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Task is a single trackable unit of work. Field names in the JSON form
// match the persisted storage schema, so a stored collection is also a
// valid export document.
type Task struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	StartDate            time.Time `json:"startDate"`
	DueDate              time.Time `json:"dueDate"`
	CompletionPercentage int       `json:"completionPercentage"`
	Status               Status    `json:"status"`
	Category             Category  `json:"category"`
	Priority             Priority  `json:"priority"`
	IsCompleted          bool      `json:"isCompleted"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// CreateInput is the validated form input required to create a task.
// The caller (the CLI layer) is responsible for ensuring the title is
// non-empty and the due date is not before the start date.
type CreateInput struct {
	Title       string
	Description string
	StartDate   time.Time
	DueDate     time.Time
	Category    Category
	Priority    Priority
}

// NewTask creates a fresh task from validated input: zero progress,
// pending status, a newly generated id, and createdAt == updatedAt.
func NewTask(in CreateInput) Task {
	now := time.Now().UTC()
	return Task{
		ID:                   newID(),
		Title:                in.Title,
		Description:          in.Description,
		StartDate:            in.StartDate,
		DueDate:              in.DueDate,
		CompletionPercentage: 0,
		Status:               StatusPending,
		Category:             in.Category,
		Priority:             in.Priority,
		IsCompleted:          false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// newID generates a task id unique within a session.
func newID() string {
	return uuid.New().String()
}

// StatusForProgress derives the status label from a completion percentage.
func StatusForProgress(progress int) Status {
	switch {
	case progress == 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// Validate checks that a task read from an external document satisfies
// the record invariants: non-empty id, known enum values, progress within
// [0,100], and createdAt not after updatedAt.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task %q has an empty id", t.Title)
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	if t.CompletionPercentage < 0 || t.CompletionPercentage > 100 {
		return fmt.Errorf("task %s: completion percentage %d outside [0,100]", t.ID, t.CompletionPercentage)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("task %s: updatedAt precedes createdAt", t.ID)
	}
	return nil
}
