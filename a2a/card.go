// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

// AgentSkill describes one discrete capability an agent advertises on its
// card.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	InputModes  []string `json:"inputModes,omitempty"`
	OutputModes []string `json:"outputModes,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// AgentCapabilities declares the optional protocol features an agent
// supports.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

// AgentCard is the static manifest describing an agent's identity and
// capabilities. It is immutable after construction and served verbatim on
// the well-known discovery endpoint for the lifetime of the process.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	Skills             []AgentSkill      `json:"skills"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes,omitempty"`
	DefaultOutputModes []string          `json:"defaultOutputModes,omitempty"`
}
