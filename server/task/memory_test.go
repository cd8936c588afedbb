// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/server/event"
)

func newTestTask(t *testing.T) *a2a.Task {
	t.Helper()
	task, err := a2a.NewTask(a2a.NewUserTextMessage("hello"))
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	return task
}

func TestInMemoryStoreCreateGet(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	task := newTestTask(t)

	if err := store.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != task.ID || got.Status.State != a2a.TaskStateSubmitted {
		t.Errorf("got task %+v", got)
	}
}

func TestInMemoryStoreCreateConflict(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	task := newTestTask(t)

	if err := store.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := store.Create(ctx, task)
	var existsErr a2a.TaskExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("expected TaskExistsError, got %v", err)
	}
}

func TestInMemoryStoreGetNotFound(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	var notFound a2a.TaskNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TaskNotFoundError, got %v", err)
	}
}

func TestInMemoryStoreApplyEvents(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	task := newTestTask(t)

	if err := store.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	working := event.NewStatusUpdateEvent(task.ID, task.ContextID, a2a.TaskStateWorking, false)
	if err := store.ApplyEvent(ctx, working); err != nil {
		t.Fatalf("ApplyEvent working: %v", err)
	}

	artifact := a2a.NewTextArtifact("echo_response", "Echo response", "hello")
	if err := store.ApplyEvent(ctx, event.NewArtifactUpdateEvent(task.ID, task.ContextID, artifact, true)); err != nil {
		t.Fatalf("ApplyEvent artifact: %v", err)
	}

	completed := event.NewStatusUpdateEvent(task.ID, task.ContextID, a2a.TaskStateCompleted, true)
	if err := store.ApplyEvent(ctx, completed); err != nil {
		t.Fatalf("ApplyEvent completed: %v", err)
	}

	got, err := store.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status.State != a2a.TaskStateCompleted {
		t.Errorf("state = %s, want completed", got.Status.State)
	}
	if len(got.Artifacts) != 1 || got.Artifacts[0].Text() != "hello" {
		t.Errorf("artifacts = %+v", got.Artifacts)
	}
	wantHistory := []a2a.TaskState{a2a.TaskStateSubmitted, a2a.TaskStateWorking, a2a.TaskStateCompleted}
	if len(got.StatusHistory) != len(wantHistory) {
		t.Fatalf("status history has %d entries, want %d", len(got.StatusHistory), len(wantHistory))
	}
	for i, s := range wantHistory {
		if got.StatusHistory[i].State != s {
			t.Errorf("history[%d] = %s, want %s", i, got.StatusHistory[i].State, s)
		}
	}
}

func TestInMemoryStoreRejectsUpdateAfterTerminal(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	task := newTestTask(t)

	if err := store.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	failed := event.NewStatusUpdateEvent(task.ID, task.ContextID, a2a.TaskStateFailed, true)
	if err := store.ApplyEvent(ctx, failed); err != nil {
		t.Fatalf("ApplyEvent failed: %v", err)
	}

	err := store.ApplyEvent(ctx, event.NewStatusUpdateEvent(task.ID, task.ContextID, a2a.TaskStateWorking, false))
	var notUpdatable TaskNotUpdatableError
	if !errors.As(err, &notUpdatable) {
		t.Fatalf("expected TaskNotUpdatableError, got %v", err)
	}
}

func TestInMemoryStoreIsolation(t *testing.T) {
	// Deep copies in and out: mutating a returned task must not affect
	// stored state.
	store := NewInMemoryStore()
	ctx := context.Background()
	task := newTestTask(t)

	if err := store.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, _ := store.Get(ctx, task.ID)
	got.Status.State = a2a.TaskStateFailed
	got.Artifacts = append(got.Artifacts, a2a.NewTextArtifact("x", "", "x"))

	fresh, _ := store.Get(ctx, task.ID)
	if fresh.Status.State != a2a.TaskStateSubmitted {
		t.Errorf("stored state mutated to %s", fresh.Status.State)
	}
	if len(fresh.Artifacts) != 0 {
		t.Errorf("stored artifacts mutated: %+v", fresh.Artifacts)
	}
}

func TestInMemoryStoreConcurrentTasks(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := a2a.NewTask(a2a.NewUserTextMessage("hello"))
			if err != nil {
				t.Errorf("NewTask: %v", err)
				return
			}
			if err := store.Create(ctx, task); err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			for _, e := range []event.Event{
				event.NewStatusUpdateEvent(task.ID, task.ContextID, a2a.TaskStateWorking, false),
				event.NewArtifactUpdateEvent(task.ID, task.ContextID, a2a.NewTextArtifact("echo_response", "", "hi"), true),
				event.NewStatusUpdateEvent(task.ID, task.ContextID, a2a.TaskStateCompleted, true),
			} {
				if err := store.ApplyEvent(ctx, e); err != nil {
					t.Errorf("ApplyEvent: %v", err)
					return
				}
			}
			got, err := store.Get(ctx, task.ID)
			if err != nil || got.Status.State != a2a.TaskStateCompleted {
				t.Errorf("task %s: %+v, %v", task.ID, got, err)
			}
		}()
	}
	wg.Wait()
}
