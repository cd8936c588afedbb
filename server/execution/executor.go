// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package execution provides the agent executor: the state machine that
// drives one task from submission to a terminal state, publishing ordered
// status and artifact events onto the task's event queue.
package execution

import (
	"context"
	"errors"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/kernel"
	"github.com/yus04/semantic-kernel-agent/server/event"
)

// ErrNothingToCancel is returned by Cancel when the task has already
// reached a terminal state. Distinguished from successful cancellation so
// callers can report it as a separate outcome.
var ErrNothingToCancel = errors.New("task already terminal, nothing to cancel")

// AgentExecutor drives task execution and cancellation. Implementations
// publish events onto the queue; for every executed task the event sequence
// is exactly [working, artifact, completed] or [working, failed], with the
// terminal status event last and emitted exactly once.
type AgentExecutor interface {
	// Execute runs the request to a terminal state. Capability-level
	// failures are reported as a failed status event, not as a returned
	// error; Execute returns an error only for protocol violations such
	// as executing an already-terminal task.
	Execute(ctx context.Context, reqCtx *RequestContext, queue *event.Queue) error

	// Cancel requests cancellation of the task. Returns
	// ErrNothingToCancel if the task is already terminal.
	Cancel(ctx context.Context, reqCtx *RequestContext, queue *event.Queue) error
}

// RequestContext carries everything the executor needs for one invocation.
type RequestContext struct {
	TaskID     string
	ContextID  string
	Message    *a2a.Message
	Capability string
	Parameters map[string]any
}

// Metadata keys on an inbound message that select the capability and its
// parameters.
const (
	MetadataCapability = "capability"
	MetadataParameters = "parameters"
)

// NewRequestContext builds a RequestContext for a task and its triggering
// message. The capability defaults to echo and may be overridden through
// message metadata, as may the capability parameters.
func NewRequestContext(task *a2a.Task, message *a2a.Message) *RequestContext {
	reqCtx := &RequestContext{
		TaskID:     task.ID,
		ContextID:  task.ContextID,
		Message:    message,
		Capability: kernel.CapabilityEcho,
		Parameters: map[string]any{},
	}

	if message == nil {
		return reqCtx
	}
	if name, ok := message.Metadata[MetadataCapability].(string); ok && name != "" {
		reqCtx.Capability = name
	}
	if params, ok := message.Metadata[MetadataParameters].(map[string]any); ok {
		reqCtx.Parameters = params
	}
	return reqCtx
}
