// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"fmt"
	"sync"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/server/event"
)

// InMemoryStore is an in-memory Store. Task data is lost when the process
// stops; that is a documented property of this store, not a defect.
type InMemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]*a2a.Task
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tasks: make(map[string]*a2a.Task),
	}
}

// Create persists a new task, rejecting duplicate IDs.
func (s *InMemoryStore) Create(ctx context.Context, task *a2a.Task) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if err := task.Validate(); err != nil {
		return StoreError{Op: "create", TaskID: task.ID, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return a2a.TaskExistsError{TaskID: task.ID}
	}
	s.tasks[task.ID] = copyTask(task)
	return nil
}

// Get retrieves a task by ID.
func (s *InMemoryStore) Get(ctx context.Context, taskID string) (*a2a.Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task ID cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return nil, a2a.TaskNotFoundError{TaskID: taskID}
	}
	return copyTask(task), nil
}

// Save persists the full state of an existing task.
func (s *InMemoryStore) Save(ctx context.Context, task *a2a.Task) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if err := task.Validate(); err != nil {
		return StoreError{Op: "save", TaskID: task.ID, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; !exists {
		return a2a.TaskNotFoundError{TaskID: task.ID}
	}
	s.tasks[task.ID] = copyTask(task)
	return nil
}

// ApplyEvent folds one executor event into the stored task. The store lock
// is held across read-modify-write, making the update atomic per task.
func (s *InMemoryStore) ApplyEvent(ctx context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[e.TaskID()]
	if !exists {
		return a2a.TaskNotFoundError{TaskID: e.TaskID()}
	}
	return applyEvent(task, e)
}

// copyTask returns a deep copy so callers cannot mutate stored state.
func copyTask(task *a2a.Task) *a2a.Task {
	cp := *task

	if task.StatusHistory != nil {
		cp.StatusHistory = make([]a2a.TaskStatus, len(task.StatusHistory))
		copy(cp.StatusHistory, task.StatusHistory)
	}
	if task.History != nil {
		cp.History = make([]*a2a.Message, len(task.History))
		copy(cp.History, task.History)
	}
	if task.Artifacts != nil {
		cp.Artifacts = make([]*a2a.Artifact, len(task.Artifacts))
		copy(cp.Artifacts, task.Artifacts)
	}
	if task.Metadata != nil {
		cp.Metadata = make(map[string]any, len(task.Metadata))
		for k, v := range task.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}
