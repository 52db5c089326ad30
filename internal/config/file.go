package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// loadFile decodes the YAML file at path over cfg. Keys missing from the
// file keep their current values; unknown keys are rejected so a typo is
// not silently ignored.
func loadFile(path string, cfg *Config) error {
	// #nosec G304 -- path comes from the operator's CONFIG_FILE, not user input
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
