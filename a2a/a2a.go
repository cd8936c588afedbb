// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2a defines the wire types for the Agent-to-Agent (A2A) protocol
// as used by the echo agent: tasks, messages, artifacts, agent cards, and
// the JSON-RPC envelope carried over HTTP.
package a2a

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Version is the protocol version advertised by this implementation.
const Version = "1.0.0"

// AgentCardPath is the well-known discovery path for the agent card.
const AgentCardPath = "/.well-known/agent-card.json"

// TaskState represents the lifecycle state of a Task.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been received but no work
	// has started yet.
	TaskStateSubmitted TaskState = "submitted"

	// TaskStateWorking indicates the task is being worked on.
	TaskStateWorking TaskState = "working"

	// TaskStateCompleted indicates the task finished successfully.
	TaskStateCompleted TaskState = "completed"

	// TaskStateFailed indicates the task finished with an error.
	TaskStateFailed TaskState = "failed"

	// TaskStateCanceled indicates the task was canceled before completion.
	TaskStateCanceled TaskState = "canceled"
)

// Terminal reports whether no further state transitions are allowed.
func (s TaskState) Terminal() bool {
	switch s {
	case TaskStateCompleted, TaskStateFailed, TaskStateCanceled:
		return true
	default:
		return false
	}
}

// TaskStatus is a task state together with the time it was entered.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Timestamp string    `json:"timestamp,omitempty"`
}

// NewTaskStatus creates a TaskStatus for the given state stamped with the
// current UTC time.
func NewTaskStatus(state TaskState) TaskStatus {
	return TaskStatus{
		State:     state,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Task is one tracked invocation, from submission to a terminal state.
//
// A Task is mutated only by the executor that owns its ID; concurrent tasks
// with different IDs are independent.
type Task struct {
	Kind      string     `json:"kind"`
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`

	// StatusHistory records every state the task has passed through,
	// in order. Append-only.
	StatusHistory []TaskStatus `json:"statusHistory,omitempty"`

	History   []*Message     `json:"history,omitempty"`
	Artifacts []*Artifact    `json:"artifacts,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TaskKind is the discriminator value carried in Task.Kind.
const TaskKind = "task"

// NewTask creates a Task in the submitted state from the initial message.
//
// The task ID is always freshly generated. The context ID is taken from the
// message if present, otherwise it defaults to the task ID so that a lone
// task forms its own context.
func NewTask(message *Message) (*Task, error) {
	if message == nil {
		return nil, fmt.Errorf("message cannot be nil")
	}
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}

	taskID := uuid.NewString()
	contextID := message.ContextID
	if contextID == "" {
		contextID = taskID
	}

	status := NewTaskStatus(TaskStateSubmitted)
	return &Task{
		Kind:          TaskKind,
		ID:            taskID,
		ContextID:     contextID,
		Status:        status,
		StatusHistory: []TaskStatus{status},
		History:       []*Message{message},
	}, nil
}

// Validate ensures the Task carries the fields every stored task must have.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	if t.ContextID == "" {
		return fmt.Errorf("task context ID cannot be empty")
	}
	if t.Status.State == "" {
		return fmt.Errorf("task status state cannot be empty")
	}
	return nil
}

// SetStatus records a new status on the task, appending to the history.
func (t *Task) SetStatus(status TaskStatus) {
	t.Status = status
	t.StatusHistory = append(t.StatusHistory, status)
}
