// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	data := []byte(`
server:
  host: 0.0.0.0
  port: 9000
  url: http://example.com
agent:
  name: EchoAgent
  description: An echo agent
  version: 2.0.0
`)
	cfg, err := Parse("test.yaml", data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 9000, URL: "http://example.com"},
		Agent:  AgentConfig{Name: "EchoAgent", Description: "An echo agent", Version: "2.0.0"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("test.yaml", []byte("{}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Host != DefaultHost || cfg.Server.Port != DefaultPort {
		t.Errorf("server defaults = %+v", cfg.Server)
	}
	if cfg.Server.URL != "http://localhost:8000" {
		t.Errorf("URL default = %q", cfg.Server.URL)
	}
	if cfg.Agent.Name != "EchoAgent" {
		t.Errorf("agent name default = %q", cfg.Agent.Name)
	}
}

func TestParseEnvSubstitution(t *testing.T) {
	t.Setenv("ECHO_TEST_HOST", "agent.internal")
	t.Setenv("ECHO_TEST_PORT", "8443")

	data := []byte(`
server:
  host: ${ECHO_TEST_HOST}
  port: ${ECHO_TEST_PORT}
`)
	cfg, err := Parse("test.yaml", data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Server.Host != "agent.internal" {
		t.Errorf("host = %q, want substituted value", cfg.Server.Host)
	}
	if cfg.Server.Port != 8443 {
		t.Errorf("port = %d, want substituted numeric value", cfg.Server.Port)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("test.yaml", []byte("server: ["))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	var cfgErr ConfigError
	if !asConfigError(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

func asConfigError(err error, target *ConfigError) bool {
	cfgErr, ok := err.(ConfigError)
	if ok {
		*target = cfgErr
	}
	return ok
}
