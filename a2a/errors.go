// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// TaskNotFoundError is returned when a task ID is not known to the store.
type TaskNotFoundError struct {
	TaskID string
}

// Error returns the error message.
func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.TaskID)
}

// TaskExistsError is returned when creating a task whose ID is already in
// use. Two requests never legally target the same fresh task ID; the second
// is rejected with this conflict rather than corrupting store state.
type TaskExistsError struct {
	TaskID string
}

// Error returns the error message.
func (e TaskExistsError) Error() string {
	return fmt.Sprintf("task %s already exists", e.TaskID)
}

// AlreadyTerminalError is returned when an operation is attempted on a task
// that has already reached a terminal state.
type AlreadyTerminalError struct {
	TaskID string
	State  TaskState
}

// Error returns the error message.
func (e AlreadyTerminalError) Error() string {
	return fmt.Sprintf("task %s is already in terminal state %s", e.TaskID, e.State)
}
