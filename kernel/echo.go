// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package kernel

// Built-in capability names.
const (
	CapabilityEcho           = "echo"
	CapabilityEchoWithPrefix = "echo_with_prefix"
)

// DefaultPrefix is applied by echo_with_prefix when no prefix parameter is
// supplied.
const DefaultPrefix = "Echo: "

// Echo returns the input text unchanged.
func Echo(text string, params map[string]any) (string, error) {
	return text, nil
}

// EchoWithPrefix returns the input text prepended with the "prefix"
// parameter. The prefix is applied verbatim, without any separator.
func EchoWithPrefix(text string, params map[string]any) (string, error) {
	prefix := DefaultPrefix
	if v, ok := params["prefix"]; ok {
		if s, ok := v.(string); ok {
			prefix = s
		}
	}
	return prefix + text, nil
}

// RegisterEchoFunctions registers the built-in echo capabilities on the
// kernel.
func RegisterEchoFunctions(k *Kernel) error {
	if err := k.Register(CapabilityEcho, Echo); err != nil {
		return err
	}
	return k.Register(CapabilityEchoWithPrefix, EchoWithPrefix)
}

// NewEchoKernel creates a kernel with the built-in echo capabilities
// registered.
func NewEchoKernel() *Kernel {
	k := New()
	// Registration on a fresh kernel cannot collide.
	if err := RegisterEchoFunctions(k); err != nil {
		panic(err)
	}
	return k
}
