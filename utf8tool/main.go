package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	utf8conv "github.com/synadia-labs/utf8conv.go/runtime"
)

// CLI defines the utf8tool command-line interface.
//
// We deliberately keep it minimal:
//   - sanitize: rewrite input as well-formed UTF-8
//   - check: exit non-zero when input is malformed
//   - dump: print one code point per line
//
// Input is read in --chunk sized buffers, so the streaming protocol is
// exercised end to end regardless of input size.
type CLI struct {
	Chunk   int  `help:"Read buffer size in bytes" default:"4096"`
	Verbose bool `short:"v" help:"Enable verbose diagnostics"`

	Sanitize SanitizeCmd `cmd:"" help:"Rewrite input as well-formed UTF-8, replacing malformed sequences with U+FFFD."`
	Check    CheckCmd    `cmd:"" help:"Report whether input is well-formed UTF-8."`
	Dump     DumpCmd     `cmd:"" help:"Print each decoded scalar value as U+XXXX, one per line."`
}

type app struct {
	log   *zap.Logger
	chunk int
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8tool"),
		kong.Description("Stream-convert and inspect UTF-8 data."),
	)

	logger := zap.NewNop()
	if cli.Verbose {
		logger = zap.Must(zap.NewDevelopment())
	}
	defer logger.Sync()

	chunk := cli.Chunk
	if chunk < 4 {
		chunk = 4
	}

	err := ctx.Run(&app{log: logger, chunk: chunk})
	ctx.FatalIfErrorf(err)
}

// openInput returns the input stream for a command: the named file, or
// stdin when path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// errMalformed is the exit-status carrier for inputs that needed
// replacements.
var errMalformed = errors.New("input contains malformed UTF-8")

// SanitizeCmd copies input to stdout, replacing every malformed
// maximal subpart with the replacement character. The copy is always
// written in full; the exit status reports whether any replacement
// occurred.
type SanitizeCmd struct {
	Path string `arg:"" optional:"" help:"Input file (defaults to stdin)"`
}

func (c *SanitizeCmd) Run(a *app) error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	r := utf8conv.NewReaderSize(in, a.chunk)
	out := bufio.NewWriter(os.Stdout)
	w := utf8conv.NewWriter(out)

	runes := 0
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if _, err := w.WriteRune(ch); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		runes++
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	a.log.Info("sanitize complete",
		zap.Int("runes", runes),
		zap.Bool("replacements", r.HasInvalidSequence()))

	if r.HasInvalidSequence() {
		return errMalformed
	}
	return nil
}

// CheckCmd decodes input and reports well-formedness through the exit
// status without producing output.
type CheckCmd struct {
	Path string `arg:"" optional:"" help:"Input file (defaults to stdin)"`
}

func (c *CheckCmd) Run(a *app) error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	r := utf8conv.NewReaderSize(in, a.chunk)
	runes := 0
	for {
		_, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		runes++
	}

	a.log.Info("check complete",
		zap.Int("runes", runes),
		zap.Bool("wellFormed", !r.HasInvalidSequence()))

	if r.HasInvalidSequence() {
		return errMalformed
	}
	return nil
}

// DumpCmd prints each decoded scalar value as U+XXXX, one per line.
// Malformed input shows up as U+FFFD lines.
type DumpCmd struct {
	Path string `arg:"" optional:"" help:"Input file (defaults to stdin)"`
}

func (c *DumpCmd) Run(a *app) error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	r := utf8conv.NewReaderSize(in, a.chunk)
	out := bufio.NewWriter(os.Stdout)
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if _, err := fmt.Fprintf(out, "U+%04X\n", ch); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	a.log.Info("dump complete", zap.Bool("replacements", r.HasInvalidSequence()))
	return nil
}
