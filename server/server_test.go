// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/agent"
	"github.com/yus04/semantic-kernel-agent/auth"
	"github.com/yus04/semantic-kernel-agent/config"
	"github.com/yus04/semantic-kernel-agent/kernel"
	"github.com/yus04/semantic-kernel-agent/server/task"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()

	ag := agent.New(config.Default(), task.NewInMemoryStore())
	srv := New(ag.Card, ag.Executor, ag.Store, opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// rpcResponse mirrors the JSON-RPC envelope with a raw result so tests can
// decode it into the expected type.
type rpcResponse struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      any               `json:"id"`
	Result  json.RawMessage   `json:"result"`
	Error   *a2a.JSONRPCError `json:"error"`
}

func rpcCall(t *testing.T, ts *httptest.Server, method string, params any) rpcResponse {
	t.Helper()

	rawParams, err := json.Marshal(params)
	require.NoError(t, err)

	body, err := json.Marshal(a2a.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  rawParams,
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sendText(t *testing.T, ts *httptest.Server, msg *a2a.Message) *a2a.Task {
	t.Helper()

	resp := rpcCall(t, ts, a2a.MethodMessageSend, a2a.MessageSendParams{Message: msg})
	require.Nil(t, resp.Error, "unexpected rpc error: %+v", resp.Error)

	var got a2a.Task
	require.NoError(t, json.Unmarshal(resp.Result, &got))
	return &got
}

func TestAgentCardEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + a2a.AgentCardPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var card a2a.AgentCard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	assert.Equal(t, "EchoAgent", card.Name)
	assert.False(t, card.Capabilities.Streaming)

	var skills []string
	for _, s := range card.Skills {
		skills = append(skills, s.Name)
	}
	assert.Contains(t, skills, kernel.CapabilityEcho)
	assert.Contains(t, skills, kernel.CapabilityEchoWithPrefix)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "EchoAgent", health.Agent)
}

func TestMessageSendEcho(t *testing.T) {
	ts := newTestServer(t)

	got := sendText(t, ts, a2a.NewUserTextMessage("Hello World!"))

	assert.Equal(t, a2a.TaskStateCompleted, got.Status.State)
	require.Len(t, got.Artifacts, 1)
	assert.Equal(t, "Hello World!", got.Artifacts[0].Text())

	// The task passed through working before completing.
	var states []a2a.TaskState
	for _, st := range got.StatusHistory {
		states = append(states, st.State)
	}
	assert.Contains(t, states, a2a.TaskStateWorking)
}

func TestMessageSendEmptyMessage(t *testing.T) {
	ts := newTestServer(t)

	got := sendText(t, ts, a2a.NewUserTextMessage(""))

	assert.Equal(t, a2a.TaskStateCompleted, got.Status.State)
	require.Len(t, got.Artifacts, 1)
	assert.Equal(t, "", got.Artifacts[0].Text())
}

func TestMessageSendWithPrefix(t *testing.T) {
	ts := newTestServer(t)

	msg := a2a.NewUserTextMessage("hi")
	msg.Metadata = map[string]any{
		"capability": kernel.CapabilityEchoWithPrefix,
		"parameters": map[string]any{"prefix": "Bot: "},
	}
	got := sendText(t, ts, msg)

	assert.Equal(t, a2a.TaskStateCompleted, got.Status.State)
	require.Len(t, got.Artifacts, 1)
	assert.Equal(t, "Bot: hi", got.Artifacts[0].Text())
}

func TestMessageSendUnknownCapability(t *testing.T) {
	ts := newTestServer(t)

	msg := a2a.NewUserTextMessage("hi")
	msg.Metadata = map[string]any{"capability": "no_such_capability"}
	got := sendText(t, ts, msg)

	assert.Equal(t, a2a.TaskStateFailed, got.Status.State)
	assert.Empty(t, got.Artifacts)
	require.NotNil(t, got.Metadata)
	assert.Contains(t, got.Metadata["error"], "unknown capability")
}

func TestTasksGet(t *testing.T) {
	ts := newTestServer(t)

	sent := sendText(t, ts, a2a.NewUserTextMessage("remember me"))

	resp := rpcCall(t, ts, a2a.MethodTasksGet, a2a.TaskQueryParams{ID: sent.ID})
	require.Nil(t, resp.Error)

	var got a2a.Task
	require.NoError(t, json.Unmarshal(resp.Result, &got))
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, a2a.TaskStateCompleted, got.Status.State)
}

func TestTasksGetNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := rpcCall(t, ts, a2a.MethodTasksGet, a2a.TaskQueryParams{ID: "missing"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.ErrTaskNotFound.Code, resp.Error.Code)
}

func TestTasksCancelTerminalTask(t *testing.T) {
	ts := newTestServer(t)

	sent := sendText(t, ts, a2a.NewUserTextMessage("done already"))

	resp := rpcCall(t, ts, a2a.MethodTasksCancel, a2a.TaskIDParams{ID: sent.ID})
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.ErrTaskNotCancelable.Code, resp.Error.Code)
}

func TestTasksCancelNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := rpcCall(t, ts, a2a.MethodTasksCancel, a2a.TaskIDParams{ID: "missing"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.ErrTaskNotFound.Code, resp.Error.Code)
}

func TestMethodNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := rpcCall(t, ts, "message/stream", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.ErrMethodNotFound.Code, resp.Error.Code)
}

func TestParseError(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Error)
	assert.Equal(t, a2a.ErrParse.Code, out.Error.Code)
}

func TestInvalidParams(t *testing.T) {
	ts := newTestServer(t)

	resp := rpcCall(t, ts, a2a.MethodMessageSend, map[string]any{})
	require.NotNil(t, resp.Error)
	assert.Equal(t, a2a.ErrInvalidParams.Code, resp.Error.Code)
}

func TestLegacyCard(t *testing.T) {
	ts := newTestServer(t, WithLegacyRoutes(kernel.NewEchoKernel()))

	resp, err := http.Get(ts.URL + "/agent/card")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var card legacyCard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	assert.Equal(t, legacyAgentID, card.AgentID)
	assert.ElementsMatch(t, []string{kernel.CapabilityEcho, kernel.CapabilityEchoWithPrefix}, card.Capabilities)
}

func TestLegacyInvoke(t *testing.T) {
	ts := newTestServer(t, WithLegacyRoutes(kernel.NewEchoKernel()))

	body, _ := json.Marshal(legacyInvokeRequest{Message: "Hello World!"})
	resp, err := http.Post(ts.URL+"/agent/invoke", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out legacyInvokeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Hello World!", out.Response)
	assert.Equal(t, legacyAgentID, out.AgentID)
	assert.Equal(t, kernel.CapabilityEcho, out.CapabilityUsed)
}

func TestLegacyInvokeWithPrefix(t *testing.T) {
	ts := newTestServer(t, WithLegacyRoutes(kernel.NewEchoKernel()))

	body, _ := json.Marshal(legacyInvokeRequest{
		Message:    "hi",
		Capability: kernel.CapabilityEchoWithPrefix,
		Parameters: map[string]any{"prefix": "Bot: "},
	})
	resp, err := http.Post(ts.URL+"/agent/invoke", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out legacyInvokeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Bot: hi", out.Response)
	assert.Equal(t, kernel.CapabilityEchoWithPrefix, out.CapabilityUsed)
}

func TestLegacyInvokeUnknownCapability(t *testing.T) {
	ts := newTestServer(t, WithLegacyRoutes(kernel.NewEchoKernel()))

	body, _ := json.Marshal(legacyInvokeRequest{Message: "hi", Capability: "nope"})
	resp, err := http.Post(ts.URL+"/agent/invoke", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLegacyRoutesDisabledByDefault(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/agent/card")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// headerAuthenticator accepts any request carrying X-Test-User.
type headerAuthenticator struct{}

func (headerAuthenticator) Authenticate(r *http.Request) (auth.User, error) {
	name := r.Header.Get("X-Test-User")
	if name == "" {
		return nil, errors.New("missing X-Test-User header")
	}
	return auth.AuthenticatedUser{Name: name}, nil
}

func TestAuthenticatorGuardsRPCOnly(t *testing.T) {
	ts := newTestServer(t, WithAuthenticator(headerAuthenticator{}))

	// Discovery stays public.
	resp, err := http.Get(ts.URL + a2a.AgentCardPath)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// RPC without credentials is rejected.
	resp, err = http.Post(ts.URL+"/", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// And accepted with them.
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tasks/get","params":{"id":"x"}}`))
	require.NoError(t, err)
	req.Header.Set("X-Test-User", "alice")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
