// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Command echo-client is a small CLI for talking to a running echo agent.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/client"
)

type cli struct {
	URL   string `help:"Agent base URL." default:"http://localhost:8000"`
	Debug bool   `help:"Enable debug logging."`

	Card   cardCmd   `cmd:"" help:"Fetch and print the agent card."`
	Send   sendCmd   `cmd:"" help:"Send a message and print the agent's response."`
	Task   taskCmd   `cmd:"" help:"Fetch a task by ID."`
	Health healthCmd `cmd:"" help:"Check the agent's health endpoint."`
}

func (c *cli) newClient() *client.Client {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return client.New(c.URL, client.WithLogger(logger))
}

type cardCmd struct{}

func (cardCmd) Run(root *cli) error {
	card, err := root.newClient().GetAgentCard(context.Background())
	if err != nil {
		return err
	}
	return json.MarshalWrite(os.Stdout, card, jsontext.WithIndent("  "))
}

type sendCmd struct {
	Message    string `arg:"" help:"Message text to send."`
	Capability string `help:"Capability to invoke, defaults to echo."`
	Prefix     string `help:"Prefix parameter for echo_with_prefix."`
}

func (s sendCmd) Run(root *cli) error {
	msg := a2a.NewUserTextMessage(s.Message)
	if s.Capability != "" || s.Prefix != "" {
		msg.Metadata = map[string]any{}
		if s.Capability != "" {
			msg.Metadata["capability"] = s.Capability
		}
		if s.Prefix != "" {
			msg.Metadata["parameters"] = map[string]any{"prefix": s.Prefix}
		}
	}

	task, err := root.newClient().SendMessage(context.Background(), &a2a.MessageSendParams{Message: msg})
	if err != nil {
		return err
	}
	return printTask(task)
}

type taskCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (t taskCmd) Run(root *cli) error {
	task, err := root.newClient().GetTask(context.Background(), t.ID)
	if err != nil {
		return err
	}
	return printTask(task)
}

type healthCmd struct{}

func (healthCmd) Run(root *cli) error {
	if err := root.newClient().Health(context.Background()); err != nil {
		return err
	}
	fmt.Println("healthy")
	return nil
}

func printTask(task *a2a.Task) error {
	if task.Status.State == a2a.TaskStateFailed {
		cause := "unknown"
		if msg, ok := task.Metadata["error"].(string); ok {
			cause = msg
		}
		return fmt.Errorf("task %s failed: %s", task.ID, cause)
	}

	for _, artifact := range task.Artifacts {
		fmt.Println(artifact.Text())
	}
	fmt.Fprintf(os.Stderr, "task %s: %s\n", task.ID, task.Status.State)
	return nil
}

func main() {
	var flags cli
	kctx := kong.Parse(&flags,
		kong.Name("echo-client"),
		kong.Description("Client for the echo agent."),
	)
	kctx.FatalIfErrorf(kctx.Run(&flags))
}
