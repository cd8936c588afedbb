// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"errors"
)

// Consumer drains a Queue, yielding events in order and stopping after the
// terminal event for the task has been delivered.
type Consumer struct {
	queue *Queue
}

// NewConsumer creates a consumer for the given queue.
func NewConsumer(queue *Queue) *Consumer {
	return &Consumer{queue: queue}
}

// ConsumeAll returns a channel yielding the queue's events in order. The
// channel is closed after the final event has been delivered, when the queue
// is closed and drained, or when the context is canceled. The final event
// itself is always delivered before the channel closes.
func (c *Consumer) ConsumeAll(ctx context.Context) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)

		for {
			e, err := c.queue.Dequeue(ctx)
			if err != nil {
				if errors.Is(err, ErrQueueClosed) {
					return
				}
				// Context cancellation or deadline.
				return
			}

			select {
			case out <- e:
			case <-ctx.Done():
				return
			}

			if IsFinal(e) {
				c.queue.Close()
				return
			}
		}
	}()

	return out
}
