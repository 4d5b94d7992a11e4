package config

import (
	"strings"
	"testing"
)

func TestValidateSettings_AcceptsFullConfig(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"server": map[string]any{
			"base_url":        "http://localhost:8080/v1",
			"api_key":         "unused",
			"timeout_seconds": 30,
		},
		"request": map[string]any{
			"model":        "gemini-2.0-flash",
			"instructions": "You are a coding assistant that talks like a pirate.",
			"input":        "How do I check if a Python object is an instance of a class?",
		},
		"output": map[string]any{
			"render": true,
		},
	}

	if err := ValidateSettings(settings); err != nil {
		t.Fatalf("ValidateSettings returned error: %v", err)
	}
}

func TestValidateSettings_AcceptsEmptyConfig(t *testing.T) {
	t.Parallel()

	if err := ValidateSettings(map[string]any{}); err != nil {
		t.Fatalf("ValidateSettings returned error: %v", err)
	}
}

func TestValidateSettings_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	err := ValidateSettings(map[string]any{
		"sever": map[string]any{"base_url": "http://localhost:8080/v1"},
	})
	if err == nil {
		t.Fatal("ValidateSettings returned nil error, want error")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("error = %q, want schema validation failure", err.Error())
	}
}

func TestValidateSettings_RejectsWrongTypes(t *testing.T) {
	t.Parallel()

	err := ValidateSettings(map[string]any{
		"server": map[string]any{"timeout_seconds": "sixty"},
	})
	if err == nil {
		t.Fatal("ValidateSettings returned nil error, want error")
	}
}
