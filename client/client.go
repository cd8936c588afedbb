// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package client is the Go client for the echo agent: agent card
// discovery, message sending over JSON-RPC, and task retrieval.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/yus04/semantic-kernel-agent/a2a"
)

// Client talks to one agent endpoint. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// nextID numbers JSON-RPC requests monotonically within this client.
	nextID atomic.Int64
}

// New creates a Client for the agent at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage submits a message and returns the resulting task in its
// terminal state.
func (c *Client) SendMessage(ctx context.Context, params *a2a.MessageSendParams) (*a2a.Task, error) {
	var task a2a.Task
	if err := c.call(ctx, a2a.MethodMessageSend, params, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// SendText is a convenience wrapper that sends a plain text message.
func (c *Client) SendText(ctx context.Context, text string) (*a2a.Task, error) {
	return c.SendMessage(ctx, &a2a.MessageSendParams{Message: a2a.NewUserTextMessage(text)})
}

// GetTask retrieves a task by ID.
func (c *Client) GetTask(ctx context.Context, taskID string) (*a2a.Task, error) {
	var task a2a.Task
	if err := c.call(ctx, a2a.MethodTasksGet, &a2a.TaskQueryParams{ID: taskID}, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CancelTask requests cancellation of a task and returns its final state.
func (c *Client) CancelTask(ctx context.Context, taskID string) (*a2a.Task, error) {
	var task a2a.Task
	if err := c.call(ctx, a2a.MethodTasksCancel, &a2a.TaskIDParams{ID: taskID}, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// call performs one JSON-RPC round trip and decodes the result into out.
// A populated error object in the response is returned as the
// *a2a.JSONRPCError itself so callers can inspect the code.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal %s params: %w", method, err)
	}

	id := c.nextID.Add(1)
	body, err := json.Marshal(a2a.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  rawParams,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("rpc call", "method", method, "id", id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	var envelope struct {
		JSONRPC string            `json:"jsonrpc"`
		ID      any               `json:"id"`
		Result  json.RawMessage   `json:"result"`
		Error   *a2a.JSONRPCError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
