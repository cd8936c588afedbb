// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"fmt"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/yus04/semantic-kernel-agent/a2a"
)

// TaskModel is the database row backing one task in the DatabaseStore. The
// full task is stored as a JSON payload; ID, context and state are lifted
// into columns for querying.
type TaskModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	ContextID string    `gorm:"index;size:64"`
	State     string    `gorm:"size:32"`
	Payload   []byte    `gorm:"type:bytes"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName sets the gorm table name.
func (TaskModel) TableName() string {
	return "tasks"
}

// NewTaskModel converts a task into its database row representation.
func NewTaskModel(task *a2a.Task) (*TaskModel, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("marshal task %s: %w", task.ID, err)
	}
	return &TaskModel{
		ID:        task.ID,
		ContextID: task.ContextID,
		State:     string(task.Status.State),
		Payload:   payload,
	}, nil
}

// ToTask converts a database row back into a task.
func (m *TaskModel) ToTask() (*a2a.Task, error) {
	var task a2a.Task
	if err := json.Unmarshal(m.Payload, &task); err != nil {
		return nil, fmt.Errorf("unmarshal task %s: %w", m.ID, err)
	}
	return &task, nil
}
