package config

import "testing"

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Config
	}{
		{
			name:     "empty environment",
			env:      map[string]string{},
			expected: Config{Encoding: "utf-8", LogFormat: "text"},
		},
		{
			name:     "encoding override",
			env:      map[string]string{EnvEncoding: " latin-1 "},
			expected: Config{Encoding: "latin-1", LogFormat: "text"},
		},
		{
			name:     "blank encoding ignored",
			env:      map[string]string{EnvEncoding: "  "},
			expected: Config{Encoding: "utf-8", LogFormat: "text"},
		},
		{
			name:     "debug true",
			env:      map[string]string{EnvDebug: "1"},
			expected: Config{Encoding: "utf-8", Debug: true, LogFormat: "text"},
		},
		{
			name:     "debug unparseable",
			env:      map[string]string{EnvDebug: "sometimes"},
			expected: Config{Encoding: "utf-8", LogFormat: "text"},
		},
		{
			name:     "json log format any case",
			env:      map[string]string{EnvLogFormat: "JSON"},
			expected: Config{Encoding: "utf-8", LogFormat: "json"},
		},
		{
			name:     "unknown log format falls back to text",
			env:      map[string]string{EnvLogFormat: "xml"},
			expected: Config{Encoding: "utf-8", LogFormat: "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadFrom(mapLookup(tt.env))
			if got != tt.expected {
				t.Errorf("LoadFrom() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvEncoding, "utf-16")
	t.Setenv(EnvDebug, "true")

	cfg := Load()
	if cfg.Encoding != "utf-16" {
		t.Errorf("expected encoding utf-16, got %s", cfg.Encoding)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
}
