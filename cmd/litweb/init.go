package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitCmd writes a starter .litwebrc in the project root.
type InitCmd struct {
	Options
	Force bool `help:"Overwrite an existing .litwebrc." short:"f"`
}

func (c *InitCmd) Run() error {
	if err := c.Options.Validate(); err != nil {
		return err
	}

	root, found, err := FindProjectRoot()
	if err != nil {
		return err
	}
	if found && !c.Force {
		return fmt.Errorf("%s already exists; pass --force to overwrite", filepath.Join(root, ConfigFileName))
	}

	if err := SaveConfig(root, &c.Options); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s\n", filepath.Join(root, ConfigFileName))
	return nil
}
