package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wyvernzora/litweb/pkg/action"
	"github.com/wyvernzora/litweb/pkg/stats"
	"github.com/wyvernzora/litweb/pkg/weaver"
)

// WeaveCmd renders each given web to a typeset document.
type WeaveCmd struct {
	Options
	Files []string `arg:"" help:"Web file(s) or glob pattern(s) to weave." type:"path"`
	Out   string   `help:"Output file. Defaults to stdout." short:"O"`
	Stats bool     `help:"Append a definition/usage index and per-chunk token counts after the woven document."`
}

func (c *WeaveCmd) Run() error {
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
		summary, err := action.Weave(ctx, web, out, opts)
		if err != nil {
			return err
		}
		if c.Stats {
			index, err := weaver.BuildNameIndex(web, opts.Templates)
			if err != nil {
				return err
			}
			if _, err := out.WriteString(index); err != nil {
				return err
			}

			rows, _, err := action.Stats(web, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d chunk(s), %d token(s) total\n", len(rows), stats.Total(rows))
			for _, r := range rows {
				fmt.Fprintf(out, "  %4d  %-10s  %6d  %s\n", r.Seq, r.Kind, r.Tokens, r.Name)
			}
		}
		printSummary(f, summary)
	}
	return nil
}
