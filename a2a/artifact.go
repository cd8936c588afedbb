// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Artifact is one unit of output produced by a task.
type Artifact struct {
	ArtifactID  string `json:"artifactId"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Parts       []Part `json:"parts"`

	// LastChunk is true when no further chunks of this artifact will
	// follow. The echo agent never chunks output, so it is always true
	// for artifacts it produces.
	LastChunk bool           `json:"lastChunk,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewTextArtifact creates an artifact wrapping the given text as a single
// text part, with a generated artifact ID.
func NewTextArtifact(name, description, text string) *Artifact {
	return &Artifact{
		ArtifactID:  uuid.NewString(),
		Name:        name,
		Description: description,
		Parts:       []Part{NewTextPart(text)},
		LastChunk:   true,
	}
}

// Text concatenates the text of all text parts, in order.
func (a *Artifact) Text() string {
	var sb strings.Builder
	for _, part := range a.Parts {
		if part.Kind == PartKindText {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// Validate ensures the Artifact is well formed.
func (a *Artifact) Validate() error {
	if a.ArtifactID == "" {
		return fmt.Errorf("artifact ID cannot be empty")
	}
	for i, part := range a.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("artifact part %d: %w", i, err)
		}
	}
	return nil
}
