package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kovidgoyal/rgbxyz"
	"github.com/kovidgoyal/rgbxyz/colorspace"
	"github.com/kovidgoyal/rgbxyz/logging"
)

var _ = fmt.Print

type Selection struct {
	Space []string `short:"s" help:"Color space to process, may be repeated. Defaults to all built-in color spaces."`
}

func (s Selection) definitions() ([]colorspace.Definition, error) {
	r, err := rgbxyz.Default()
	if err != nil {
		return nil, err
	}
	if len(s.Space) == 0 {
		return r.Definitions(), nil
	}
	ans := make([]colorspace.Definition, 0, len(s.Space))
	for _, name := range s.Space {
		d, found := r.Lookup(name)
		if !found {
			return nil, fmt.Errorf("%w: %s (known: %v)", colorspace.ErrUnknownSpace, name, r.Names())
		}
		ans = append(ans, d)
	}
	return ans, nil
}

type PrintCmd struct {
	Selection
}

func (c *PrintCmd) Run(out io.Writer) error {
	defs, err := c.definitions()
	if err != nil {
		return err
	}
	for i, d := range defs {
		if i > 0 {
			if _, err = fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err = d.Format(out); err != nil {
			return err
		}
	}
	return nil
}

type VerifyCmd struct {
	Selection
}

func (c *VerifyCmd) Run(out io.Writer) error {
	defs, err := c.definitions()
	if err != nil {
		return err
	}
	for _, d := range defs {
		if err = d.Verify(); err != nil {
			return err
		}
		if _, err = fmt.Fprintln(out, "ok", d.Name); err != nil {
			return err
		}
	}
	return nil
}

type CLI struct {
	Verbose bool      `short:"v" help:"Log debug output to stderr."`
	Print   PrintCmd  `cmd:"" default:"withargs" help:"Print the RGB to XYZ and XYZ to RGB matrices."`
	Verify  VerifyCmd `cmd:"" help:"Check the derived matrices against their invariants."`
}

func setup_logging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rgbxyz"),
		kong.Description("Derive linear RGB <-> CIE XYZ conversion matrices for well known color spaces."),
		kong.UsageOnError(),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	setup_logging(cli.Verbose)
	ctx.FatalIfErrorf(ctx.Run())
}
