// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/config"
	"github.com/yus04/semantic-kernel-agent/kernel"
)

// NewEchoAgentCard builds the agent card advertised on the well-known
// discovery endpoint. The card is constructed once at startup and never
// changes afterwards.
func NewEchoAgentCard(cfg *config.Config) a2a.AgentCard {
	description := cfg.Agent.Description
	if description == "" {
		description = "An echo agent that returns the same message it receives"
	}

	return a2a.AgentCard{
		Name:        cfg.Agent.Name,
		Description: description,
		URL:         cfg.Server.URL,
		Version:     cfg.Agent.Version,
		Skills: []a2a.AgentSkill{
			{
				ID:          kernel.CapabilityEcho,
				Name:        kernel.CapabilityEcho,
				Description: "Echoes back the input message",
				InputModes:  []string{"text"},
				OutputModes: []string{"text"},
				Examples:    []string{"Hello World!"},
				Tags:        []string{"echo", "simple"},
			},
			{
				ID:          kernel.CapabilityEchoWithPrefix,
				Name:        kernel.CapabilityEchoWithPrefix,
				Description: "Echoes back the input message with a prefix",
				InputModes:  []string{"text"},
				OutputModes: []string{"text"},
				Examples:    []string{"Hello World! with prefix"},
				Tags:        []string{"echo", "prefix"},
			},
		},
		Capabilities: a2a.AgentCapabilities{
			Streaming:              false,
			PushNotifications:      false,
			StateTransitionHistory: true,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
	}
}
