package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/grindlemire/go-tile/internal/log"
)

// runCenter implements the center subcommand.
func runCenter(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("center", pflag.ContinueOnError)
	percent := fs.Float64P("percent", "p", 50, "size of the result as a percentage of the input")

	cfg, done, err := setup(fs, args, stdout)
	if err != nil {
		return err
	}
	defer done()

	r, err := parseRect(fs.Args(), cfg)
	if err != nil {
		return err
	}
	out, err := r.Center(*percent)
	if err != nil {
		return err
	}
	log.Debug("center", "input", r.String(), "percent", *percent, "result", out.String())
	fmt.Fprintln(stdout, out)
	return nil
}

// runShave implements the shave subcommand.
func runShave(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("shave", pflag.ContinueOnError)
	percent := fs.Float64P("percent", "p", 50, "percentage of the extent to keep")
	side := &sideFlag{}
	fs.VarP(side, "side", "s", "side to trim: top, bottom, left or right")

	cfg, done, err := setup(fs, args, stdout)
	if err != nil {
		return err
	}
	defer done()

	r, err := parseRect(fs.Args(), cfg)
	if err != nil {
		return err
	}
	out, err := r.Shave(*percent, side.side)
	if err != nil {
		return err
	}
	log.Debug("shave", "input", r.String(), "percent", *percent, "side", side.side.String(), "result", out.String())
	fmt.Fprintln(stdout, out)
	return nil
}

// runSplit implements the split subcommand.
// It prints the top (or left) piece, then the bottom (or right) piece.
func runSplit(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("split", pflag.ContinueOnError)
	percent := fs.Float64P("percent", "p", 50, "share of the first piece as a percentage")
	side := &sideFlag{}
	fs.VarP(side, "side", "s", "top or bottom stacks the pieces, left or right places them side by side")

	cfg, done, err := setup(fs, args, stdout)
	if err != nil {
		return err
	}
	defer done()

	r, err := parseRect(fs.Args(), cfg)
	if err != nil {
		return err
	}
	first, second, err := r.Split(*percent, side.side)
	if err != nil {
		return err
	}
	log.Debug("split", "input", r.String(), "percent", *percent, "side", side.side.String(),
		"first", first.String(), "second", second.String())
	fmt.Fprintln(stdout, first)
	fmt.Fprintln(stdout, second)
	return nil
}
