// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMessageText(t *testing.T) {
	msg := &Message{
		MessageID: "m1",
		Role:      RoleUser,
		Parts: []Part{
			NewTextPart("Hello"),
			{Kind: PartKindData, Data: map[string]any{"skip": true}},
			NewTextPart(" World"),
		},
	}

	if got := msg.Text(); got != "Hello World" {
		t.Errorf("Text() = %q, want %q", got, "Hello World")
	}
}

func TestMessageTextEmptyParts(t *testing.T) {
	msg := &Message{MessageID: "m1", Role: RoleUser}
	if got := msg.Text(); got != "" {
		t.Errorf("Text() = %q, want empty string", got)
	}
}

func TestNewUserTextMessage(t *testing.T) {
	msg := NewUserTextMessage("hi")
	if msg.MessageID == "" {
		t.Error("message ID should be generated")
	}
	if msg.Role != RoleUser {
		t.Errorf("role = %s, want user", msg.Role)
	}

	want := []Part{{Kind: PartKindText, Text: "hi"}}
	if diff := cmp.Diff(want, msg.Parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		message *Message
		wantErr bool
	}{
		{
			name:    "valid user message",
			message: NewUserTextMessage("hi"),
		},
		{
			name:    "valid empty parts",
			message: &Message{MessageID: "m1", Role: RoleUser},
		},
		{
			name:    "missing message ID",
			message: &Message{Role: RoleUser},
			wantErr: true,
		},
		{
			name:    "bad role",
			message: &Message{MessageID: "m1", Role: "system"},
			wantErr: true,
		},
		{
			name: "bad part kind",
			message: &Message{
				MessageID: "m1",
				Role:      RoleUser,
				Parts:     []Part{{Kind: "video"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestArtifactText(t *testing.T) {
	artifact := NewTextArtifact("echo_response", "Echo response", "hello")
	if artifact.ArtifactID == "" {
		t.Error("artifact ID should be generated")
	}
	if !artifact.LastChunk {
		t.Error("text artifacts are never chunked, LastChunk should be true")
	}
	if got := artifact.Text(); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}
}
