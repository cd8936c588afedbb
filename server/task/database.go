// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yus04/semantic-kernel-agent/a2a"
	"github.com/yus04/semantic-kernel-agent/server/event"
)

// DatabaseStore is a Store backed by a relational database through gorm.
// The database handle is injected by the caller together with its driver;
// this package has no driver dependency of its own.
type DatabaseStore struct {
	db *gorm.DB
}

var _ Store = (*DatabaseStore)(nil)

// DatabaseStoreConfig holds configuration for DatabaseStore.
type DatabaseStoreConfig struct {
	DB *gorm.DB

	// AutoMigrate creates or updates the tasks table on construction.
	AutoMigrate bool
}

// NewDatabaseStore creates a DatabaseStore on the given connection.
func NewDatabaseStore(config DatabaseStoreConfig) (*DatabaseStore, error) {
	if config.DB == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	if config.AutoMigrate {
		if err := config.DB.AutoMigrate(&TaskModel{}); err != nil {
			return nil, fmt.Errorf("migrate tasks table: %w", err)
		}
	}
	return &DatabaseStore{db: config.DB}, nil
}

// Create persists a new task, rejecting duplicate IDs.
func (s *DatabaseStore) Create(ctx context.Context, task *a2a.Task) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if err := task.Validate(); err != nil {
		return StoreError{Op: "create", TaskID: task.ID, Err: err}
	}

	model, err := NewTaskModel(task)
	if err != nil {
		return StoreError{Op: "create", TaskID: task.ID, Err: err}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&TaskModel{}).Where("id = ?", task.ID).Count(&count).Error; err != nil {
			return StoreError{Op: "create", TaskID: task.ID, Err: err}
		}
		if count > 0 {
			return a2a.TaskExistsError{TaskID: task.ID}
		}
		if err := tx.Create(model).Error; err != nil {
			return StoreError{Op: "create", TaskID: task.ID, Err: err}
		}
		return nil
	})
}

// Get retrieves a task by ID.
func (s *DatabaseStore) Get(ctx context.Context, taskID string) (*a2a.Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task ID cannot be empty")
	}

	var model TaskModel
	if err := s.db.WithContext(ctx).Where("id = ?", taskID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, a2a.TaskNotFoundError{TaskID: taskID}
		}
		return nil, StoreError{Op: "get", TaskID: taskID, Err: err}
	}
	return model.ToTask()
}

// Save persists the full state of an existing task.
func (s *DatabaseStore) Save(ctx context.Context, task *a2a.Task) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if err := task.Validate(); err != nil {
		return StoreError{Op: "save", TaskID: task.ID, Err: err}
	}

	model, err := NewTaskModel(task)
	if err != nil {
		return StoreError{Op: "save", TaskID: task.ID, Err: err}
	}
	if err := s.db.WithContext(ctx).Save(model).Error; err != nil {
		return StoreError{Op: "save", TaskID: task.ID, Err: err}
	}
	return nil
}

// ApplyEvent folds one executor event into the stored task inside a
// transaction, keeping the read-modify-write atomic per task.
func (s *DatabaseStore) ApplyEvent(ctx context.Context, e event.Event) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model TaskModel
		if err := tx.Where("id = ?", e.TaskID()).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return a2a.TaskNotFoundError{TaskID: e.TaskID()}
			}
			return StoreError{Op: "apply", TaskID: e.TaskID(), Err: err}
		}

		task, err := model.ToTask()
		if err != nil {
			return StoreError{Op: "apply", TaskID: e.TaskID(), Err: err}
		}
		if err := applyEvent(task, e); err != nil {
			return err
		}

		updated, err := NewTaskModel(task)
		if err != nil {
			return StoreError{Op: "apply", TaskID: e.TaskID(), Err: err}
		}
		if err := tx.Save(updated).Error; err != nil {
			return StoreError{Op: "apply", TaskID: e.TaskID(), Err: err}
		}
		return nil
	})
}
