package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "specbuilder.json"

// Config holds extractor defaults. Command-line flags override these; these
// override the built-in defaults.
type Config struct {
	// OptionsOutput is the path of the generated options table.
	OptionsOutput string `json:"options_output,omitempty"`

	// CapabilitiesOutput is the path of the generated capabilities table.
	CapabilitiesOutput string `json:"capabilities_output,omitempty"`

	// SourceExtension selects which files directory mode scans.
	SourceExtension string `json:"source_extension,omitempty"`

	// IncludePattern is a doublestar glob matched against root-relative
	// paths in directory mode. When empty, it is derived from
	// SourceExtension ("**/*" + extension).
	IncludePattern string `json:"include_pattern,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OptionsOutput:      "./code-options.js",
		CapabilitiesOutput: "./code-capabilities.js",
		SourceExtension:    ".cs",
	}
}

// Pattern returns the directory-mode include pattern, deriving it from the
// source extension when no explicit pattern is configured.
func (c *Config) Pattern() string {
	if c.IncludePattern != "" {
		return c.IncludePattern
	}
	ext := c.SourceExtension
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return "**/*" + ext
}

// Load loads configuration from path, or from specbuilder.json in the
// working directory when path is empty. A missing default file yields the
// defaults; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// when non-empty.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.OptionsOutput = overlay.OptionsOutput
	if result.OptionsOutput == "" {
		result.OptionsOutput = base.OptionsOutput
	}

	result.CapabilitiesOutput = overlay.CapabilitiesOutput
	if result.CapabilitiesOutput == "" {
		result.CapabilitiesOutput = base.CapabilitiesOutput
	}

	result.SourceExtension = overlay.SourceExtension
	if result.SourceExtension == "" {
		result.SourceExtension = base.SourceExtension
	}

	result.IncludePattern = overlay.IncludePattern
	if result.IncludePattern == "" {
		result.IncludePattern = base.IncludePattern
	}

	return result
}
