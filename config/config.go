// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the agent configuration from YAML. String values of
// the form ${VAR_NAME} are resolved against the process environment at load
// time; variables from a local .env file are loaded first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the configuration omits a value.
const (
	DefaultHost = "localhost"
	DefaultPort = 8000
)

// Config models the agent configuration file.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Agent    AgentConfig    `yaml:"agent"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds the listen address and the public URL advertised on
// the agent card.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port Port   `yaml:"port"`
	URL  string `yaml:"url"`
}

// Port decodes from either an integer or a numeric string. Values supplied
// through environment substitution always arrive as strings.
type Port int

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Port) UnmarshalYAML(value *yaml.Node) error {
	var i int
	if err := value.Decode(&i); err == nil {
		*p = Port(i)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid port %q", s)
	}
	*p = Port(n)
	return nil
}

// AgentConfig holds the agent identity published on the card.
type AgentConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// AuthConfig enables bearer-token authentication on the RPC endpoint when a
// key file is configured.
type AuthConfig struct {
	// JWKSFile is the path to a JWK set holding the verification keys.
	JWKSFile string `yaml:"jwks_file"`
}

// DatabaseConfig selects the optional persistent task store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ConfigError wraps a configuration failure. Fatal at startup.
type ConfigError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e ConfigError) Unwrap() error {
	return e.Err
}

// Load reads, substitutes, and decodes the configuration file.
func Load(path string) (*Config, error) {
	LoadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ConfigError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes configuration bytes, resolving ${VAR} placeholders against
// the environment.
func Parse(path string, data []byte) (*Config, error) {
	// Substitution operates on the decoded document so that only whole
	// string scalars of the form ${VAR} are touched.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ConfigError{Path: path, Err: err}
	}
	raw = SubstituteEnv(raw)

	substituted, err := yaml.Marshal(raw)
	if err != nil {
		return nil, ConfigError{Path: path, Err: err}
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(substituted, cfg); err != nil {
		return nil, ConfigError{Path: path, Err: err}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.URL == "" {
		c.Server.URL = fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
	}
	if c.Agent.Name == "" {
		c.Agent.Name = "EchoAgent"
	}
	if c.Agent.Version == "" {
		c.Agent.Version = "1.0.0"
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
