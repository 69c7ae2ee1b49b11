package collection

import (
	"math"
	"time"

	"github.com/jyang234/taskdeck/internal/model"
)

// Stats holds the aggregate counters derived from a full collection.
type Stats struct {
	TotalTasks           int `json:"totalTasks"`
	CompletedTasks       int `json:"completedTasks"`
	InProgressTasks      int `json:"inProgressTasks"`
	PendingTasks         int `json:"pendingTasks"`
	OverdueTasks         int `json:"overdueTasks"`
	CompletionPercentage int `json:"completionPercentage"`
}

// Aggregate computes Stats over the collection. Overdue counts are
// evaluated against the current time and are never persisted.
func Aggregate(tasks []model.Task) Stats {
	return aggregateAt(tasks, time.Now().UTC())
}

func aggregateAt(tasks []model.Task, now time.Time) Stats {
	var s Stats
	s.TotalTasks = len(tasks)

	for _, t := range tasks {
		if t.IsCompleted {
			s.CompletedTasks++
		}
		switch t.Status {
		case model.StatusInProgress:
			s.InProgressTasks++
		case model.StatusPending:
			s.PendingTasks++
		}
		if !t.IsCompleted && t.DueDate.Before(now) {
			s.OverdueTasks++
		}
	}

	if s.TotalTasks > 0 {
		// Half-up rounding: 1/3 complete reports 33, 2/3 reports 67.
		s.CompletionPercentage = int(math.Round(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
	}
	return s
}
