// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"errors"
	"sync"
)

// DefaultMaxQueueSize is the default capacity of a Queue.
const DefaultMaxQueueSize = 1024

var (
	// ErrQueueClosed is returned when using a closed queue.
	ErrQueueClosed = errors.New("event queue is closed")

	// ErrQueueEmpty is returned by TryDequeue on an empty queue.
	ErrQueueEmpty = errors.New("event queue is empty")

	// ErrQueueFull is returned when enqueueing onto a saturated queue.
	ErrQueueFull = errors.New("event queue is full")
)

// Queue is a bounded, ordered delivery channel for a single task's events.
// Events are delivered in the exact order they were enqueued. Child queues
// created with Tap receive copies of every subsequently enqueued event.
type Queue struct {
	events chan Event

	mu       sync.RWMutex
	closed   bool
	children []*Queue

	closeOnce sync.Once
	done      chan struct{}
}

// NewQueue creates a queue with the given capacity. A size of 0 uses
// DefaultMaxQueueSize.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultMaxQueueSize
	}
	return &Queue{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Enqueue adds an event to the queue and propagates it to child queues.
// Returns ErrQueueClosed after Close and ErrQueueFull when the queue is at
// capacity.
func (q *Queue) Enqueue(ctx context.Context, e Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.events <- e:
	default:
		return ErrQueueFull
	}

	for _, child := range q.children {
		// Tapped consumers must not stall the producer.
		go func(c *Queue) {
			_ = c.Enqueue(context.Background(), e)
		}(child)
	}
	return nil
}

// Dequeue blocks until an event is available, the context is canceled, or
// the queue is closed and drained.
func (q *Queue) Dequeue(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case e := <-q.events:
		return e, nil
	case <-q.done:
		// Drain events enqueued before the close.
		select {
		case e := <-q.events:
			return e, nil
		default:
			return nil, ErrQueueClosed
		}
	}
}

// TryDequeue retrieves an event without blocking.
func (q *Queue) TryDequeue() (Event, error) {
	select {
	case e := <-q.events:
		return e, nil
	default:
		if q.IsClosed() {
			return nil, ErrQueueClosed
		}
		return nil, ErrQueueEmpty
	}
}

// Tap creates a child queue that receives all events enqueued after this
// call. Returns ErrQueueClosed if the queue is already closed.
func (q *Queue) Tap() (*Queue, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, ErrQueueClosed
	}
	child := NewQueue(cap(q.events))
	q.children = append(q.children, child)
	return child, nil
}

// Close closes the queue and all of its children. Events already enqueued
// remain dequeueable. Close is idempotent.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		children := q.children
		q.mu.Unlock()

		close(q.done)
		for _, child := range children {
			child.Close()
		}
	})
}

// IsClosed reports whether the queue has been closed.
func (q *Queue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

// Len returns the number of events currently buffered.
func (q *Queue) Len() int {
	return len(q.events)
}
