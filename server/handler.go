// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the echo agent over HTTP: the well-known agent
// card, the JSON-RPC invocation endpoint, a health probe, and an optional
// deprecated REST profile.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/server/event"
	"github.com/yus04/semantic-kernel-agent/server/execution"
)

// handleRPC decodes one JSON-RPC request from the body and dispatches it.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req a2a.JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeRPCResponse(w, a2a.NewJSONRPCErrorResponse(nil, a2a.ErrParse))
		return
	}

	var (
		result any
		rpcErr *a2a.JSONRPCError
	)
	switch req.Method {
	case a2a.MethodMessageSend:
		result, rpcErr = s.messageSend(r.Context(), req.Params)
	case a2a.MethodTasksGet:
		result, rpcErr = s.tasksGet(r.Context(), req.Params)
	case a2a.MethodTasksCancel:
		result, rpcErr = s.tasksCancel(r.Context(), req.Params)
	default:
		rpcErr = a2a.ErrMethodNotFound
	}

	if rpcErr != nil {
		s.logger.Warn("rpc request failed",
			"method", req.Method, "code", rpcErr.Code, "message", rpcErr.Message)
		s.writeRPCResponse(w, a2a.NewJSONRPCErrorResponse(req.ID, rpcErr))
		return
	}
	s.writeRPCResponse(w, a2a.NewJSONRPCResponse(req.ID, result))
}

// messageSend creates a fresh task for the message, drives the executor to
// a terminal state, and returns the final task.
//
// Capability-level failures do not produce a JSON-RPC error: they are
// reported as a task in the failed state with the cause under
// metadata.error. The error object is reserved for envelope problems.
func (s *Server) messageSend(ctx context.Context, raw json.RawMessage) (*a2a.Task, *a2a.JSONRPCError) {
	var params a2a.MessageSendParams
	if err := json.Unmarshal(raw, &params); err != nil || params.Message == nil {
		return nil, a2a.ErrInvalidParams
	}
	if err := params.Message.Validate(); err != nil {
		return nil, a2a.ErrInvalidParams.WithData(err.Error())
	}

	task, err := a2a.NewTask(params.Message)
	if err != nil {
		return nil, a2a.ErrInvalidParams.WithData(err.Error())
	}
	if err := s.store.Create(ctx, task); err != nil {
		s.logger.Error("task create failed", "task_id", task.ID, "error", err)
		return nil, a2a.ErrInternal
	}

	s.logger.Info("task submitted", "task_id", task.ID, "context_id", task.ContextID)

	reqCtx := execution.NewRequestContext(task, params.Message)
	queue := event.NewQueue(s.queueSize)

	go func() {
		defer queue.Close()
		if err := s.executor.Execute(ctx, reqCtx, queue); err != nil {
			s.logger.Error("executor failed", "task_id", task.ID, "error", err)
		}
	}()

	for e := range event.NewConsumer(queue).ConsumeAll(ctx) {
		if err := s.store.ApplyEvent(ctx, e); err != nil {
			s.logger.Error("apply event failed",
				"task_id", task.ID, "event", e.Kind(), "error", err)
		}
	}

	final, err := s.store.Get(ctx, task.ID)
	if err != nil {
		s.logger.Error("task lookup failed", "task_id", task.ID, "error", err)
		return nil, a2a.ErrInternal
	}
	s.logger.Info("task finished", "task_id", final.ID, "state", final.Status.State)
	return final, nil
}

// tasksGet returns the stored task by ID.
func (s *Server) tasksGet(ctx context.Context, raw json.RawMessage) (*a2a.Task, *a2a.JSONRPCError) {
	var params a2a.TaskQueryParams
	if err := json.Unmarshal(raw, &params); err != nil || params.ID == "" {
		return nil, a2a.ErrInvalidParams
	}

	task, err := s.store.Get(ctx, params.ID)
	if err != nil {
		var notFound a2a.TaskNotFoundError
		if errors.As(err, &notFound) {
			return nil, a2a.ErrTaskNotFound
		}
		s.logger.Error("task lookup failed", "task_id", params.ID, "error", err)
		return nil, a2a.ErrInternal
	}
	return task, nil
}

// tasksCancel requests cancellation of a task and returns its final state.
// Canceling a task that already reached a terminal state is reported as
// "task cannot be canceled" rather than conflated with success.
func (s *Server) tasksCancel(ctx context.Context, raw json.RawMessage) (*a2a.Task, *a2a.JSONRPCError) {
	var params a2a.TaskIDParams
	if err := json.Unmarshal(raw, &params); err != nil || params.ID == "" {
		return nil, a2a.ErrInvalidParams
	}

	task, err := s.store.Get(ctx, params.ID)
	if err != nil {
		var notFound a2a.TaskNotFoundError
		if errors.As(err, &notFound) {
			return nil, a2a.ErrTaskNotFound
		}
		s.logger.Error("task lookup failed", "task_id", params.ID, "error", err)
		return nil, a2a.ErrInternal
	}

	reqCtx := &execution.RequestContext{TaskID: task.ID, ContextID: task.ContextID}
	queue := event.NewQueue(s.queueSize)

	go func() {
		defer queue.Close()
		if err := s.executor.Cancel(ctx, reqCtx, queue); err != nil {
			if errors.Is(err, execution.ErrNothingToCancel) {
				return
			}
			s.logger.Error("cancel failed", "task_id", task.ID, "error", err)
		}
	}()

	canceled := false
	for e := range event.NewConsumer(queue).ConsumeAll(ctx) {
		if err := s.store.ApplyEvent(ctx, e); err != nil {
			s.logger.Error("apply event failed",
				"task_id", task.ID, "event", e.Kind(), "error", err)
			continue
		}
		canceled = true
	}
	if !canceled {
		return nil, a2a.ErrTaskNotCancelable
	}

	final, err := s.store.Get(ctx, task.ID)
	if err != nil {
		return nil, a2a.ErrInternal
	}
	return final, nil
}

// writeRPCResponse writes the JSON-RPC envelope.
func (s *Server) writeRPCResponse(w http.ResponseWriter, resp *a2a.JSONRPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("write response failed", "error", err)
	}
}
