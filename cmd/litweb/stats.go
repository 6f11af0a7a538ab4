package main

import (
	"context"

	"github.com/wyvernzora/litweb/pkg/action"
	"github.com/wyvernzora/litweb/pkg/stats"
)

// StatsCmd reports per-chunk token counts for each given web.
type StatsCmd struct {
	Options
	Files []string `arg:"" help:"Web file(s) or glob pattern(s) to analyze." type:"path"`
}

func (c *StatsCmd) Run() error {
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
		rows, _, err := action.Stats(web, opts)
		if err != nil {
			return err
		}
		printStatsTable(f, rows, stats.Total(rows))
	}
	return nil
}
