package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/example/textkit/internal/textenc"
)

// Environment variable names
const (
	EnvEncoding  = "TEXTKIT_ENCODING"
	EnvDebug     = "TEXTKIT_DEBUG"
	EnvLogFormat = "TEXTKIT_LOG_FORMAT"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds defaults shared by the textkit commands.
// Command-line flags override these values.
type Config struct {
	Encoding  string
	Debug     bool
	LogFormat string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Encoding:  textenc.Default,
		Debug:     false,
		LogFormat: LogFormatText,
	}
}

// Load returns the configuration from the process environment.
func Load() Config {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds a configuration from lookup, falling back to Default for
// unset or unparseable values.
func LoadFrom(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup(EnvEncoding); ok && strings.TrimSpace(v) != "" {
		cfg.Encoding = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDebug); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Debug = b
		}
	}
	if v, ok := lookup(EnvLogFormat); ok {
		if strings.EqualFold(strings.TrimSpace(v), LogFormatJSON) {
			cfg.LogFormat = LogFormatJSON
		}
	}

	return cfg
}
