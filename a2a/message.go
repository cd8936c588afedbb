// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role identifies the sender of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// PartKind discriminates the content type of a Part.
type PartKind string

const (
	PartKindText PartKind = "text"
	PartKindData PartKind = "data"
	PartKindFile PartKind = "file"
)

// Part is a flat union representing one piece of message or artifact
// content. Kind indicates which of the payload fields is set.
type Part struct {
	Kind     PartKind       `json:"kind"`
	Text     string         `json:"text,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	File     *FilePart      `json:"file,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FilePart holds the contents or reference for a file part. Not produced by
// the echo agent but accepted on the wire.
type FilePart struct {
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	URI      string `json:"uri,omitempty"`
	Bytes    string `json:"bytes,omitempty"`
}

// NewTextPart creates a Part containing text content.
func NewTextPart(text string) Part {
	return Part{Kind: PartKindText, Text: text}
}

// Validate ensures the Part carries a known kind.
func (p Part) Validate() error {
	switch p.Kind {
	case PartKindText, PartKindData, PartKindFile:
		return nil
	default:
		return fmt.Errorf("unknown part kind %q", p.Kind)
	}
}

// Message is a single conversational turn.
type Message struct {
	MessageID string         `json:"messageId"`
	Role      Role           `json:"role"`
	Parts     []Part         `json:"parts"`
	TaskID    string         `json:"taskId,omitempty"`
	ContextID string         `json:"contextId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewUserTextMessage creates a user message with a single text part and a
// generated message ID.
func NewUserTextMessage(text string) *Message {
	return &Message{
		MessageID: uuid.NewString(),
		Role:      RoleUser,
		Parts:     []Part{NewTextPart(text)},
	}
}

// NewAgentTextMessage creates an agent message with a single text part,
// threaded onto the given task and context.
func NewAgentTextMessage(text, taskID, contextID string) *Message {
	return &Message{
		MessageID: uuid.NewString(),
		Role:      RoleAgent,
		Parts:     []Part{NewTextPart(text)},
		TaskID:    taskID,
		ContextID: contextID,
	}
}

// Text concatenates the text of all text parts, in order. A message with no
// text parts yields the empty string.
func (m *Message) Text() string {
	var sb strings.Builder
	for _, part := range m.Parts {
		if part.Kind == PartKindText {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// Validate ensures the Message is well formed. An empty parts slice is
// permitted: it yields an empty capability input, not an error.
func (m *Message) Validate() error {
	if m.MessageID == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	if m.Role != RoleUser && m.Role != RoleAgent {
		return fmt.Errorf("invalid message role %q", m.Role)
	}
	for i, part := range m.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("message part %d: %w", i, err)
		}
	}
	return nil
}
