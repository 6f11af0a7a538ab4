package main

import (
	"context"
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/wyvernzora/litweb/pkg/action"
)

var describeLit = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
}

// DescribeCmd dumps a web's parsed structure for debugging.
type DescribeCmd struct {
	Options
	Files []string `arg:"" help:"Web file(s) or glob pattern(s) to describe." type:"path"`
}

func (c *DescribeCmd) Run() error {
	if err := c.Options.Validate(); err != nil {
		return err
	}

	files, err := resolveFiles(c.Files)
	if err != nil {
		return err
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
		fmt.Printf("%s:\n", f)
		for i, chunk := range web.Chunks() {
			fmt.Printf("  [%d] %s\n", i, describeLit.Sdump(chunk))
		}
	}
	return nil
}
