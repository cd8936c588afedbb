// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package execution

import (
	"context"
	"fmt"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/kernel"
	"github.com/yus04/semantic-kernel-agent/server/event"
	"github.com/yus04/semantic-kernel-agent/server/task"
)

// ArtifactName is the name given to artifacts produced by the echo agent.
const ArtifactName = "echo_response"

// EchoExecutor executes echo tasks by resolving the requested capability on
// the kernel and wrapping its output in a single text artifact.
type EchoExecutor struct {
	kernel *kernel.Kernel
	store  task.Store
}

var _ AgentExecutor = (*EchoExecutor)(nil)

// NewEchoExecutor creates an executor over the given kernel and store.
func NewEchoExecutor(k *kernel.Kernel, store task.Store) *EchoExecutor {
	return &EchoExecutor{kernel: k, store: store}
}

// Execute drives the task through its lifecycle:
//
//	working -> artifact -> completed   on success
//	working -> failed                  on any capability failure
//
// The working event is always emitted first; exactly one terminal event is
// emitted last.
func (e *EchoExecutor) Execute(ctx context.Context, reqCtx *RequestContext, queue *event.Queue) error {
	stored, err := e.store.Get(ctx, reqCtx.TaskID)
	if err != nil {
		return err
	}
	if stored.Status.State.Terminal() {
		return a2a.AlreadyTerminalError{TaskID: stored.ID, State: stored.Status.State}
	}

	working := event.NewStatusUpdateEvent(reqCtx.TaskID, reqCtx.ContextID, a2a.TaskStateWorking, false)
	if err := queue.Enqueue(ctx, working); err != nil {
		return err
	}

	text := ""
	if reqCtx.Message != nil {
		text = reqCtx.Message.Text()
	}

	response, err := e.invoke(reqCtx.Capability, text, reqCtx.Parameters)
	if err != nil {
		return e.fail(ctx, reqCtx, queue, err)
	}

	artifact := a2a.NewTextArtifact(ArtifactName, "Echo response", response)
	artifactEvent := event.NewArtifactUpdateEvent(reqCtx.TaskID, reqCtx.ContextID, artifact, true)
	if err := queue.Enqueue(ctx, artifactEvent); err != nil {
		return err
	}

	completed := event.NewStatusUpdateEvent(reqCtx.TaskID, reqCtx.ContextID, a2a.TaskStateCompleted, true)
	return queue.Enqueue(ctx, completed)
}

// invoke resolves and calls the capability function, converting panics into
// errors so that no fault escapes the executor boundary unconverted.
func (e *EchoExecutor) invoke(capability, text string, params map[string]any) (response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability %s panicked: %v", capability, r)
		}
	}()

	fn, err := e.kernel.Resolve(capability)
	if err != nil {
		return "", err
	}
	response, err = fn(text, params)
	if err != nil {
		return "", fmt.Errorf("capability %s: %w", capability, err)
	}
	return response, nil
}

// fail emits the terminal failed status carrying the failure cause as
// metadata. No artifact is emitted on failure.
func (e *EchoExecutor) fail(ctx context.Context, reqCtx *RequestContext, queue *event.Queue, cause error) error {
	failed := event.NewStatusUpdateEvent(reqCtx.TaskID, reqCtx.ContextID, a2a.TaskStateFailed, true)
	failed.Metadata = map[string]any{"error": cause.Error()}
	return queue.Enqueue(ctx, failed)
}

// Cancel reports cancellation for a task. All echo work is synchronous and
// effectively instantaneous, so there is never an in-flight capability call
// to interrupt: a non-terminal task is marked canceled, a terminal one
// yields ErrNothingToCancel.
func (e *EchoExecutor) Cancel(ctx context.Context, reqCtx *RequestContext, queue *event.Queue) error {
	stored, err := e.store.Get(ctx, reqCtx.TaskID)
	if err != nil {
		return err
	}
	if stored.Status.State.Terminal() {
		return ErrNothingToCancel
	}

	canceled := event.NewStatusUpdateEvent(reqCtx.TaskID, reqCtx.ContextID, a2a.TaskStateCanceled, true)
	return queue.Enqueue(ctx, canceled)
}
