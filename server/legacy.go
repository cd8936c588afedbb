// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yus04/semantic-kernel-agent/kernel"
)

// legacyAgentID identifies the agent on the deprecated REST profile.
const legacyAgentID = "echo-agent-v1"

// capabilityResolver is the part of the kernel the legacy invoke route
// needs: look up a capability by name.
type capabilityResolver interface {
	Resolve(name string) (kernel.CapabilityFunc, error)
	Names() []string
}

// legacyCard is the pre-well-known card shape kept for old integrations.
//
// Deprecated: use the card served on the well-known discovery path.
type legacyCard struct {
	AgentID      string         `json:"agent_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Version      string         `json:"version"`
	Capabilities []string       `json:"capabilities"`
	InputSchema  map[string]any `json:"input_schema"`
	OutputSchema map[string]any `json:"output_schema"`
}

type legacyInvokeRequest struct {
	Message    string         `json:"message"`
	Capability string         `json:"capability"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type legacyInvokeResponse struct {
	Response       string `json:"response"`
	AgentID        string `json:"agent_id"`
	CapabilityUsed string `json:"capability_used"`
}

type legacyErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) mountLegacyRoutes(r chi.Router) {
	r.Get("/agent/card", s.handleLegacyCard)
	r.Post("/agent/invoke", s.handleLegacyInvoke)
}

func (s *Server) handleLegacyCard(w http.ResponseWriter, _ *http.Request) {
	card := legacyCard{
		AgentID:      legacyAgentID,
		Name:         s.card.Name,
		Description:  s.card.Description,
		Version:      s.card.Version,
		Capabilities: s.legacyKernel.Names(),
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message":    map[string]any{"type": "string"},
				"capability": map[string]any{"type": "string"},
				"parameters": map[string]any{"type": "object"},
			},
			"required": []string{"message"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"response":        map[string]any{"type": "string"},
				"agent_id":        map[string]any{"type": "string"},
				"capability_used": map[string]any{"type": "string"},
			},
		},
	}
	s.writeLegacyJSON(w, http.StatusOK, card)
}

// handleLegacyInvoke runs a capability directly, bypassing the task
// lifecycle. Unknown capabilities are a client error, capability failures
// a server error.
func (s *Server) handleLegacyInvoke(w http.ResponseWriter, r *http.Request) {
	var req legacyInvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeLegacyJSON(w, http.StatusBadRequest, legacyErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Capability == "" {
		req.Capability = kernel.CapabilityEcho
	}

	fn, err := s.legacyKernel.Resolve(req.Capability)
	if err != nil {
		var unknown kernel.UnknownCapabilityError
		if errors.As(err, &unknown) {
			s.writeLegacyJSON(w, http.StatusBadRequest, legacyErrorResponse{Error: err.Error()})
			return
		}
		s.writeLegacyJSON(w, http.StatusInternalServerError, legacyErrorResponse{Error: err.Error()})
		return
	}

	response, err := fn(req.Message, req.Parameters)
	if err != nil {
		s.logger.Error("legacy invoke failed", "capability", req.Capability, "error", err)
		s.writeLegacyJSON(w, http.StatusInternalServerError, legacyErrorResponse{Error: err.Error()})
		return
	}

	s.writeLegacyJSON(w, http.StatusOK, legacyInvokeResponse{
		Response:       response,
		AgentID:        legacyAgentID,
		CapabilityUsed: req.Capability,
	})
}

func (s *Server) writeLegacyJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response failed", "error", err)
	}
}
