package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
)

var version = "dev"

// CLI is the top-level command tree Kong parses into.
type CLI struct {
	Tangle   TangleCmd   `cmd:"" help:"Write a web's output chunks to disk."`
	Weave    WeaveCmd    `cmd:"" help:"Render a web to a typeset document."`
	Build    BuildCmd    `cmd:"" help:"Tangle and weave a web in one pass."`
	Stats    StatsCmd    `cmd:"" help:"Report per-chunk token counts."`
	Describe DescribeCmd `cmd:"" help:"Dump a web's parsed structure for debugging."`
	Init     InitCmd     `cmd:"" help:"Write a starter .litwebrc in the project root."`

	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI

	root, _, err := FindProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	parser, err := kong.New(&cli,
		kong.Name("litweb"),
		kong.Description("A literate-programming tangle/weave toolchain."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Configuration(kongyaml.Loader, filepath.Join(root, ConfigFileName)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
