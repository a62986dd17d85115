package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordchain.json")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Errorf("expected default config, got %+v", config)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config file to be written: %v", err)
	}
	if !strings.Contains(string(data), `"default_count": 15`) {
		t.Errorf("unexpected default config file contents:\n%s", data)
	}

	// Loading the written file gives the same config back.
	again, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig on written defaults failed: %v", err)
	}
	if !reflect.DeepEqual(again, config) {
		t.Errorf("expected %+v, got %+v", config, again)
	}
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name          string
		contents      string
		expected      *Config
		errorContains string
	}{
		{
			name:     "Partial file keeps defaults",
			contents: `{"log_level": "debug"}`,
			expected: &Config{LogLevel: "debug", DatabasePath: "./data/wordchain.db", DefaultCount: 15},
		},
		{
			name:     "Full file",
			contents: `{"log_level": "warn", "database_path": "/tmp/x.db", "default_count": 40}`,
			expected: &Config{LogLevel: "warn", DatabasePath: "/tmp/x.db", DefaultCount: 40},
		},
		{
			name:          "Invalid JSON",
			contents:      `{"log_level": `,
			errorContains: "failed to parse config file",
		},
		{
			name:          "Non-positive default count",
			contents:      `{"default_count": 0}`,
			errorContains: "default_count must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatal(err)
			}

			config, err := LoadConfig(path)
			if tc.errorContains != "" {
				if err == nil {
					t.Fatalf("expected an error but got none")
				}
				if !strings.Contains(err.Error(), tc.errorContains) {
					t.Errorf("expected error to contain %q, but got %q", tc.errorContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("got unexpected error: %v", err)
			}
			if !reflect.DeepEqual(config, tc.expected) {
				t.Errorf("expected %+v, got %+v", tc.expected, config)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range testCases {
		if got := parseLogLevel(input); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
