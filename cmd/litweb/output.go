package main

import (
	"fmt"
	"os"

	"github.com/jwalton/gchalk"
	"github.com/wyvernzora/litweb/pkg/stats"
)

// printEffectiveConfig echoes the merged configuration in verbose mode,
// the same role the reference toolchain's ChunkyOptions.Print plays.
func printEffectiveConfig(root string, opts *Options, files []string) {
	fmt.Fprintf(os.Stderr, " %s \n", gchalk.Bold("Effective Configuration"))
	fmt.Printf("    Project Root:  %s\n", root)
	fmt.Printf("    Output Dir:    %s\n", opts.OutDir)
	fmt.Printf("    Lead:          %s\n", opts.Lead)
	fmt.Printf("    Reference:     %s\n", opts.RefStyle)
	fmt.Printf("    Templates:     %s\n", opts.Templates)
	fmt.Printf("    Strict:        %t\n", opts.Strict)

	fmt.Printf(gchalk.Bold("\nFiles (%d total):\n"), len(files))
	if len(files) == 0 {
		fmt.Println(gchalk.Dim("  (none matched)"))
		return
	}
	for _, f := range files {
		fmt.Printf("  - %s\n", f)
	}
}

// printSummary prints one colored "ok" line per file, mirroring the
// reference toolchain's printChunkOutput marker/summary convention.
func printSummary(file, summary string) {
	fmt.Fprintf(os.Stderr, "  %s %s %s\n", gchalk.Green("✓"), gchalk.Bold(file), gchalk.Dim(summary))
}

// printWarning prints a non-fatal diagnostic (e.g. a permitted missing @i)
// in the same yellow-marker style the reference toolchain uses for
// jumbo-chunk warnings.
func printWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", gchalk.WithYellow().Bold("!"), fmt.Sprintf(format, args...))
}

// printStatsTable renders a per-chunk token table to stdout.
func printStatsTable(file string, rows []stats.ChunkStat, total int) {
	fmt.Printf(" %s \n", gchalk.Bold(file))
	for _, r := range rows {
		name := r.Name
		if name == "" {
			name = gchalk.Dim("(anonymous)")
		}
		fmt.Printf("  %4d  %-10s  %6d  %s\n", r.Seq, r.Kind, r.Tokens, name)
	}
	fmt.Printf("  %s %d\n\n", gchalk.Bold("total tokens:"), total)
}
