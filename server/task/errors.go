// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"errors"
	"fmt"

	"github.com/yus04/semantic-kernel-agent/a2a"
)

var (
	errNilArtifact  = errors.New("artifact update carries no artifact")
	errUnknownEvent = errors.New("unknown event kind")
)

// TaskNotUpdatableError is returned when applying a status update to a task
// already in a terminal state.
type TaskNotUpdatableError struct {
	TaskID string
	State  a2a.TaskState
}

// Error returns the error message.
func (e TaskNotUpdatableError) Error() string {
	return fmt.Sprintf("task %s in state %s cannot be updated", e.TaskID, e.State)
}

// StoreError wraps a failure of a store operation.
type StoreError struct {
	Op     string
	TaskID string
	Err    error
}

// Error returns the error message.
func (e StoreError) Error() string {
	return fmt.Sprintf("task store %s failed for task %s: %v", e.Op, e.TaskID, e.Err)
}

// Unwrap returns the underlying error.
func (e StoreError) Unwrap() error {
	return e.Err
}
