package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file Kong's kong-yaml loader
// reads flag defaults from, and that the init subcommand writes.
const ConfigFileName = ".litwebrc"

// FindProjectRoot searches for .litwebrc starting from the current
// directory and walking up the directory tree. Returns the directory
// containing .litwebrc, or the current directory if none is found.
func FindProjectRoot() (string, bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("getting current directory: %w", err)
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, false, nil
		}
		dir = parent
	}
}

// SaveConfig writes opts as YAML to .litwebrc in projectRoot.
func SaveConfig(projectRoot string, opts *Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	header := "# litweb configuration file\n\n"
	data = append([]byte(header), data...)

	path := filepath.Join(projectRoot, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
