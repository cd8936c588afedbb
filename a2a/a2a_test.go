// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"testing"
)

func TestNewTask(t *testing.T) {
	msg := NewUserTextMessage("hello")
	task, err := NewTask(msg)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	if task.ID == "" {
		t.Error("task ID should be generated")
	}
	if task.ContextID != task.ID {
		t.Errorf("context ID should default to task ID, got %s", task.ContextID)
	}
	if task.Status.State != TaskStateSubmitted {
		t.Errorf("expected submitted state, got %s", task.Status.State)
	}
	if len(task.StatusHistory) != 1 {
		t.Errorf("expected one status history entry, got %d", len(task.StatusHistory))
	}
	if len(task.History) != 1 || task.History[0] != msg {
		t.Error("task history should contain the initial message")
	}
}

func TestNewTaskKeepsContextID(t *testing.T) {
	msg := NewUserTextMessage("hello")
	msg.ContextID = "ctx-1"

	task, err := NewTask(msg)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if task.ContextID != "ctx-1" {
		t.Errorf("expected ctx-1, got %s", task.ContextID)
	}
}

func TestNewTaskNilMessage(t *testing.T) {
	if _, err := NewTask(nil); err == nil {
		t.Error("expected error for nil message")
	}
}

func TestTaskStateTerminal(t *testing.T) {
	terminal := []TaskState{TaskStateCompleted, TaskStateFailed, TaskStateCanceled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []TaskState{TaskStateSubmitted, TaskStateWorking} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestSetStatusAppendsHistory(t *testing.T) {
	task, err := NewTask(NewUserTextMessage("hi"))
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	task.SetStatus(NewTaskStatus(TaskStateWorking))
	task.SetStatus(NewTaskStatus(TaskStateCompleted))

	if task.Status.State != TaskStateCompleted {
		t.Errorf("expected completed, got %s", task.Status.State)
	}
	want := []TaskState{TaskStateSubmitted, TaskStateWorking, TaskStateCompleted}
	if len(task.StatusHistory) != len(want) {
		t.Fatalf("expected %d history entries, got %d", len(want), len(task.StatusHistory))
	}
	for i, s := range want {
		if task.StatusHistory[i].State != s {
			t.Errorf("history[%d] = %s, want %s", i, task.StatusHistory[i].State, s)
		}
	}
}
