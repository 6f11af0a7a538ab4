package main

import "fmt"

// Options is the unified configuration shared by every subcommand. Kong
// parses CLI flags into it directly; init also serializes it to YAML as a
// starter .litwebrc, and build/tangle/weave read it back via
// kong.Configuration(kongyaml.Loader, ConfigFileName) for their defaults.
type Options struct {
	OutDir    string   `yaml:"outDir" name:"out" help:"Directory tangled files are written relative to." short:"o" default:"."`
	Lead      string   `yaml:"lead" name:"lead" help:"Command lead character." default:"@"`
	Permit    []string `yaml:"permit" name:"permit" help:"Glob pattern(s) permitting missing @i targets." short:"p"`
	Strict    bool     `yaml:"strict" name:"strict" help:"Reject unknown commands in prose instead of passing them through." short:"s"`
	RefStyle  string   `yaml:"refStyle" name:"ref-style" help:"Reference list style: simple or transitive." default:"simple"`
	Templates string   `yaml:"templates" name:"templates" help:"Builtin template set name (plain, markdown, html) or a path to a .toml file." default:"plain"`
	Encoding  string   `yaml:"encoding" name:"encoding" help:"tiktoken encoding used for token counts." default:"o200k_base"`
	Verbose   bool     `yaml:"verbose" name:"verbose" help:"Print effective configuration before running." short:"v"`

	Files []string `yaml:"files,omitempty" json:"-" kong:"-"`
}

// LeadRune validates and returns the configured command lead character.
func (o *Options) LeadRune() (rune, error) {
	runes := []rune(o.Lead)
	if len(runes) != 1 {
		return 0, fmt.Errorf("lead must be exactly one character, got %q", o.Lead)
	}
	return runes[0], nil
}

// Validate checks field values that Kong's struct tags can't express.
func (o *Options) Validate() error {
	if _, err := o.LeadRune(); err != nil {
		return err
	}
	switch o.RefStyle {
	case "simple", "transitive":
	default:
		return fmt.Errorf("refStyle must be %q or %q, got %q", "simple", "transitive", o.RefStyle)
	}
	return nil
}

// MergeOptions merges CLI options into config options, CLI winning when a
// field differs from its zero/default value, the same precedence the
// reference toolchain's MergeOptions applies.
func MergeOptions(config, cli *Options) *Options {
	result := &Options{}

	result.Files = append(result.Files, config.Files...)
	result.Files = append(result.Files, cli.Files...)

	result.OutDir = pickString(cli.OutDir, config.OutDir, ".")
	result.Lead = pickString(cli.Lead, config.Lead, "@")
	result.RefStyle = pickString(cli.RefStyle, config.RefStyle, "simple")
	result.Templates = pickString(cli.Templates, config.Templates, "plain")
	result.Encoding = pickString(cli.Encoding, config.Encoding, "o200k_base")

	result.Permit = append(result.Permit, config.Permit...)
	result.Permit = append(result.Permit, cli.Permit...)

	result.Strict = cli.Strict || config.Strict
	result.Verbose = cli.Verbose || config.Verbose

	return result
}

// pickString returns cli if it differs from def (the flag's own default,
// meaning the user or Kong left it unset/default), config if set, else def.
func pickString(cli, config, def string) string {
	if cli != "" && cli != def {
		return cli
	}
	if config != "" {
		return config
	}
	return def
}
