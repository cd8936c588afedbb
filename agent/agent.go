// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package agent assembles the echo agent: the kernel with its registered
// capabilities, the executor driving task lifecycles, and the agent card
// advertised on discovery.
package agent

import (
	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/config"
	"github.com/yus04/semantic-kernel-agent/kernel"
	"github.com/yus04/semantic-kernel-agent/server/execution"
	"github.com/yus04/semantic-kernel-agent/server/task"
)

// EchoAgent bundles everything the server needs to expose the agent.
type EchoAgent struct {
	Kernel   *kernel.Kernel
	Executor *execution.EchoExecutor
	Store    task.Store
	Card     a2a.AgentCard
}

// New creates an EchoAgent from the configuration, backed by the given
// task store.
func New(cfg *config.Config, store task.Store) *EchoAgent {
	k := kernel.NewEchoKernel()
	return &EchoAgent{
		Kernel:   k,
		Executor: execution.NewEchoExecutor(k, store),
		Store:    store,
		Card:     NewEchoAgentCard(cfg),
	}
}
