// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package task provides task persistence for the agent server: an in-memory
// store for the common single-process case and a database-backed store for
// deployments that need tasks to survive restarts.
package task

import (
	"context"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/server/event"
)

// Store persists tasks and applies lifecycle events to them.
//
// Implementations must be safe for concurrent use from multiple
// simultaneously handled requests. Mutations for a single task ID are
// atomic: two concurrent ApplyEvent calls for the same task never interleave
// partial updates.
type Store interface {
	// Create persists a new task. Returns a2a.TaskExistsError if a task
	// with the same ID already exists.
	Create(ctx context.Context, task *a2a.Task) error

	// Get retrieves a task by ID. Returns a2a.TaskNotFoundError if the
	// task does not exist.
	Get(ctx context.Context, taskID string) (*a2a.Task, error)

	// Save persists the full state of an existing task.
	Save(ctx context.Context, task *a2a.Task) error

	// ApplyEvent folds one executor event into the stored task: status
	// updates append to the status history and set the current status,
	// artifact updates append to the artifacts. A status update on a task
	// already in a terminal state returns TaskNotUpdatableError.
	ApplyEvent(ctx context.Context, e event.Event) error
}

// applyEvent mutates a task according to one executor event. Callers hold
// whatever lock makes the mutation atomic for the task.
func applyEvent(task *a2a.Task, e event.Event) error {
	switch e := e.(type) {
	case *event.StatusUpdateEvent:
		if task.Status.State.Terminal() {
			return TaskNotUpdatableError{TaskID: task.ID, State: task.Status.State}
		}
		task.SetStatus(e.Status)
		if len(e.Metadata) > 0 {
			if task.Metadata == nil {
				task.Metadata = make(map[string]any, len(e.Metadata))
			}
			for k, v := range e.Metadata {
				task.Metadata[k] = v
			}
		}
		return nil

	case *event.ArtifactUpdateEvent:
		if e.Artifact == nil {
			return StoreError{Op: "apply", TaskID: task.ID, Err: errNilArtifact}
		}
		task.Artifacts = append(task.Artifacts, e.Artifact)
		return nil

	default:
		return StoreError{Op: "apply", TaskID: task.ID, Err: errUnknownEvent}
	}
}
