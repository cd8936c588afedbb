// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package event provides the ordered, per-task event channel between the
// agent executor and the request handler. The executor publishes status and
// artifact updates onto a bounded Queue; the handler drains them, in order,
// until the terminal event arrives.
package event

import (
	"fmt"

	"github.com/yus04/semantic-kernel-agent/a2a"
)

// Event is one update published by an executor for a task. It is a closed
// tagged union: StatusUpdateEvent or ArtifactUpdateEvent.
type Event interface {
	// Kind returns the event kind for type discrimination.
	Kind() string
	// TaskID returns the task this event belongs to.
	TaskID() string
}

// Event kinds.
const (
	KindStatusUpdate   = "status-update"
	KindArtifactUpdate = "artifact-update"
)

// StatusUpdateEvent reports a task state transition. When Final is true it
// is the last event for the task; no further events may follow.
type StatusUpdateEvent struct {
	ID        string         `json:"taskId"`
	ContextID string         `json:"contextId,omitempty"`
	Status    a2a.TaskStatus `json:"status"`
	Final     bool           `json:"final"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Kind implements Event.
func (e *StatusUpdateEvent) Kind() string { return KindStatusUpdate }

// TaskID implements Event.
func (e *StatusUpdateEvent) TaskID() string { return e.ID }

// String returns a short description for logging.
func (e *StatusUpdateEvent) String() string {
	return fmt.Sprintf("StatusUpdateEvent{TaskID: %s, State: %s, Final: %t}",
		e.ID, e.Status.State, e.Final)
}

// ArtifactUpdateEvent carries one artifact produced by a task.
type ArtifactUpdateEvent struct {
	ID        string         `json:"taskId"`
	ContextID string         `json:"contextId,omitempty"`
	Artifact  *a2a.Artifact  `json:"artifact"`
	LastChunk bool           `json:"lastChunk"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Kind implements Event.
func (e *ArtifactUpdateEvent) Kind() string { return KindArtifactUpdate }

// TaskID implements Event.
func (e *ArtifactUpdateEvent) TaskID() string { return e.ID }

// String returns a short description for logging.
func (e *ArtifactUpdateEvent) String() string {
	name := ""
	if e.Artifact != nil {
		name = e.Artifact.Name
	}
	return fmt.Sprintf("ArtifactUpdateEvent{TaskID: %s, Artifact: %s, LastChunk: %t}",
		e.ID, name, e.LastChunk)
}

// NewStatusUpdateEvent creates a StatusUpdateEvent for the given task.
func NewStatusUpdateEvent(taskID, contextID string, state a2a.TaskState, final bool) *StatusUpdateEvent {
	return &StatusUpdateEvent{
		ID:        taskID,
		ContextID: contextID,
		Status:    a2a.NewTaskStatus(state),
		Final:     final,
	}
}

// NewArtifactUpdateEvent creates an ArtifactUpdateEvent for the given task.
func NewArtifactUpdateEvent(taskID, contextID string, artifact *a2a.Artifact, lastChunk bool) *ArtifactUpdateEvent {
	return &ArtifactUpdateEvent{
		ID:        taskID,
		ContextID: contextID,
		Artifact:  artifact,
		LastChunk: lastChunk,
	}
}

// IsFinal reports whether the event terminates its task's stream.
func IsFinal(e Event) bool {
	if status, ok := e.(*StatusUpdateEvent); ok {
		return status.Final
	}
	return false
}
