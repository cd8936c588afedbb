// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads variables from .env into the process environment.
// Existing environment variables take precedence; a missing file is not an
// error.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
}

// SubstituteEnv recursively resolves environment placeholders in decoded
// YAML data. Only string scalars that are entirely of the form ${VAR_NAME}
// are substituted; when the variable is unset the literal placeholder is
// preserved unchanged.
func SubstituteEnv(data any) any {
	switch v := data.(type) {
	case string:
		return substituteString(v)

	case map[string]any:
		for key, value := range v {
			v[key] = SubstituteEnv(value)
		}
		return v

	case []any:
		for i, item := range v {
			v[i] = SubstituteEnv(item)
		}
		return v

	default:
		return v
	}
}

func substituteString(s string) string {
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return s
	}
	name := s[2 : len(s)-1]
	if name == "" || strings.Contains(name, "}") {
		return s
	}
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return s
}
