package main

import (
	"context"

	"github.com/wyvernzora/litweb/pkg/action"
)

// TangleCmd writes every @o chunk in each given web to disk.
type TangleCmd struct {
	Options
	Files []string `arg:"" help:"Web file(s) or glob pattern(s) to tangle." type:"path"`
}

func (c *TangleCmd) Run() error {
	root, _, err := FindProjectRoot()
	if err != nil {
		return err
	}
	if err := c.Options.Validate(); err != nil {
		return err
	}

	files, err := resolveFiles(c.Files)
	if err != nil {
		return err
	}
	if c.Options.Verbose {
		printEffectiveConfig(root, &c.Options, files)
	}

	opts, err := actionOptions(&c.Options)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, f := range files {
		web, err := action.Load(ctx, f, opts)
		if err != nil {
			return err
		}
		summary, err := action.Tangle(ctx, web, opts)
		if err != nil {
			return err
		}
		printSummary(f, summary)
	}
	return nil
}
