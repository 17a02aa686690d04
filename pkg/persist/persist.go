// Package persist saves and loads task and plan snapshots as JSON files.
// The CLI reads and writes them between commands, and `serve --state` loads
// one at startup and saves it on an interval and at shutdown.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

// Snapshot is everything written to a file.
type Snapshot struct {
	Tasks []task.Task `json:"tasks"`
	Plan  *plan.Plan  `json:"plan,omitempty"`
}

type Persistor interface {
	Save(Snapshot) error
	Load() (Snapshot, error)
}

var _ Persistor = JSON{}

type JSON struct {
	file string
}

func InJSON(file string) JSON {
	return JSON{file}
}

// Save writes a snapshot to the json file, replacing its contents.
func (j JSON) Save(s Snapshot) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.Tasks == nil {
		s.Tasks = []task.Task{}
	}
	bs, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.file, bs, 0660)
}

// Load reads and validates a snapshot. A missing file is an empty snapshot.
func (j JSON) Load() (Snapshot, error) {
	bs, err := os.ReadFile(j.file)
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{Tasks: []task.Task{}}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	if err := json.Unmarshal(bs, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode %s: %w", j.file, err)
	}
	if err := s.check(); err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", j.file, err)
	}
	return s, nil
}

// check validates task ids are present and unique.
func (s Snapshot) check() error {
	seen := map[task.ID]bool{}
	for _, t := range s.Tasks {
		if t.ID == "" {
			return errors.New("task without id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
