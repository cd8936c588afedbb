// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package kernel provides the capability registry for the echo agent: a
// mapping from capability names to pure request-to-response transforms.
//
// The registry is open, but the echo agent only ever registers the two
// built-in echo functions. Capability functions must be deterministic, free
// of side effects, and safe to call concurrently.
package kernel

import (
	"fmt"
	"sort"
	"sync"
)

// CapabilityFunc transforms an input text and a set of parameters into a
// response text. Implementations must be pure: fast, non-blocking, and
// without side effects.
type CapabilityFunc func(text string, params map[string]any) (string, error)

// UnknownCapabilityError is returned when resolving a capability name that
// has not been registered.
type UnknownCapabilityError struct {
	Name string
}

// Error returns the error message.
func (e UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown capability %q", e.Name)
}

// Kernel maps capability names to their functions. The zero value is not
// usable; create instances with New.
type Kernel struct {
	mu        sync.RWMutex
	functions map[string]CapabilityFunc
}

// New creates an empty Kernel.
func New() *Kernel {
	return &Kernel{
		functions: make(map[string]CapabilityFunc),
	}
}

// Register adds a capability function under the given name. Registering a
// name twice is an error.
func (k *Kernel) Register(name string, fn CapabilityFunc) error {
	if name == "" {
		return fmt.Errorf("capability name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("capability function cannot be nil")
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, exists := k.functions[name]; exists {
		return fmt.Errorf("capability %q is already registered", name)
	}
	k.functions[name] = fn
	return nil
}

// Resolve looks up a capability function by name.
func (k *Kernel) Resolve(name string) (CapabilityFunc, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	fn, ok := k.functions[name]
	if !ok {
		return nil, UnknownCapabilityError{Name: name}
	}
	return fn, nil
}

// Names returns the registered capability names in sorted order.
func (k *Kernel) Names() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	names := make([]string, 0, len(k.functions))
	for name := range k.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
