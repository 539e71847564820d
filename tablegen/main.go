package main

import (
	"github.com/alecthomas/kong"

	"github.com/synadia-labs/utf8conv.go/tablegen/core"
)

// CLI defines the tablegen command-line interface.
//
// tablegen regenerates the lead-byte classification table used by the
// runtime decoder. The table is fully determined by the UTF-8
// well-formedness ranges, so the only knobs are the output path and
// diagnostics.
type CLI struct {
	Output  string `short:"o" help:"Output file" default:"runtime/tables.go"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tablegen"),
		kong.Description("Generate the UTF-8 lead-byte classification table."),
	)

	err := core.Run(cli.Output, core.Options{Verbose: cli.Verbose})
	ctx.FatalIfErrorf(err)
}
