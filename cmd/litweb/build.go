package main

import (
	"context"
	"os"
	"sync"

	"github.com/wyvernzora/litweb/pkg/action"
)

// BuildCmd tangles and weaves each given web in one pass. The two actions
// read the same parsed Web and share no mutable state, so they run
// concurrently per file.
type BuildCmd struct {
	Options
	Files []string `arg:"" help:"Web file(s) or glob pattern(s) to build." type:"path"`
	Out   string   `help:"Weave output file. Defaults to stdout." short:"O"`
}

func (c *BuildCmd) Run() error {
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

	out := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	ctx := context.Background()
	for _, f := range files {
		web, err := action.Load(ctx, f, opts)
		if err != nil {
			return err
		}

		var wg sync.WaitGroup
		var tangleSummary, weaveSummary string
		var tangleErr, weaveErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			tangleSummary, tangleErr = action.Tangle(ctx, web, opts)
		}()
		go func() {
			defer wg.Done()
			weaveSummary, weaveErr = action.Weave(ctx, web, out, opts)
		}()
		wg.Wait()

		if tangleErr != nil {
			return tangleErr
		}
		if weaveErr != nil {
			return weaveErr
		}
		printSummary(f, tangleSummary+"; "+weaveSummary)
	}
	return nil
}
