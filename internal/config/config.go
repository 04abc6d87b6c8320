// Package config loads the optional buildprobe configuration file.
// All settings default to on; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFile = ".buildprobe.yaml"

// Config holds all buildprobe configuration.
type Config struct {
	// Verbose enables debug logging (the --verbose flag overrides this).
	Verbose bool `yaml:"verbose"`

	// Report toggles individual report sections.
	Report Report `yaml:"report"`
}

// Report selects which sections of the diagnostic report are rendered.
type Report struct {
	Project  bool `yaml:"project"`
	Compiler bool `yaml:"compiler"`
	Edition  bool `yaml:"edition"`
	Mode     bool `yaml:"mode"`
	Widths   bool `yaml:"widths"`
	Defines  bool `yaml:"defines"`
}

// Default returns the configuration used when no file is present:
// every report section enabled.
func Default() *Config {
	return &Config{
		Report: Report{
			Project:  true,
			Compiler: true,
			Edition:  true,
			Mode:     true,
			Widths:   true,
			Defines:  true,
		},
	}
}

// Load reads the configuration at path. An empty path means "use
// DefaultFile if it exists, defaults otherwise"; an explicit path that
// cannot be read is an error. Settings absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
