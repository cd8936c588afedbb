// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"encoding/json"
	"fmt"
)

// A2A RPC method names.
const (
	// MethodMessageSend sends a message and drives the resulting task to
	// a terminal state.
	MethodMessageSend = "message/send"
	// MethodTasksGet retrieves a task by ID.
	MethodTasksGet = "tasks/get"
	// MethodTasksCancel requests cancellation of a task.
	MethodTasksCancel = "tasks/cancel"
)

// JSONRPCRequest is a JSON-RPC 2.0 request envelope.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse is a JSON-RPC 2.0 response envelope. Result and Error are
// mutually exclusive.
type JSONRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *JSONRPCError `json:"error,omitempty"`
}

// NewJSONRPCResponse creates a success response for the given request ID.
func NewJSONRPCResponse(id, result any) *JSONRPCResponse {
	return &JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result}
}

// NewJSONRPCErrorResponse creates an error response for the given request ID.
func NewJSONRPCErrorResponse(id any, rpcErr *JSONRPCError) *JSONRPCResponse {
	return &JSONRPCResponse{JSONRPC: "2.0", ID: id, Error: rpcErr}
}

// JSONRPCError is a JSON-RPC 2.0 error object.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *JSONRPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// WithData returns a copy of the error carrying additional detail.
func (e *JSONRPCError) WithData(data any) *JSONRPCError {
	return &JSONRPCError{Code: e.Code, Message: e.Message, Data: data}
}

// Standard JSON-RPC 2.0 error objects plus the A2A-specific codes.
var (
	ErrParse             = &JSONRPCError{Code: -32700, Message: "parse error"}
	ErrInvalidRequest    = &JSONRPCError{Code: -32600, Message: "invalid request"}
	ErrMethodNotFound    = &JSONRPCError{Code: -32601, Message: "method not found"}
	ErrInvalidParams     = &JSONRPCError{Code: -32602, Message: "invalid params"}
	ErrInternal          = &JSONRPCError{Code: -32603, Message: "internal error"}
	ErrTaskNotFound      = &JSONRPCError{Code: -32001, Message: "task not found"}
	ErrTaskNotCancelable = &JSONRPCError{Code: -32002, Message: "task cannot be canceled"}
)

// MessageSendParams are the params of a message/send request.
type MessageSendParams struct {
	Message  *Message       `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TaskQueryParams are the params of a tasks/get request.
type TaskQueryParams struct {
	ID string `json:"id"`
}

// TaskIDParams are the params of a tasks/cancel request.
type TaskIDParams struct {
	ID string `json:"id"`
}
