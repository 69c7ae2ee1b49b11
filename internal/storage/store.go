package storage

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jyang234/taskdeck/internal/model"
)

// Store serializes the task collection to and from the tasks slot of a
// key-value backend. Calendar instants round-trip as RFC 3339 strings via
// the standard time.Time JSON encoding.
type Store struct {
	kv  KV
	log *logrus.Logger
}

// New creates a Store over the given backend.
func New(kv KV, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Save writes the full collection as a JSON array.
func (s *Store) Save(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return s.kv.Put(TasksKey, data)
}

// Load reads the collection back. A slot that was never written yields an
// empty collection. A slot with malformed content also yields an empty
// collection: the corruption is logged as a warning and never escalated,
// so a damaged data file can't lock the user out.
func (s *Store) Load() ([]model.Task, error) {
	data, ok, err := s.kv.Get(TasksKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Task{}, nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.WithError(err).Warn("stored tasks are malformed; starting with an empty collection")
		return []model.Task{}, nil
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
