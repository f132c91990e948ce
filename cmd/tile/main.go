// Package main provides the tile CLI for partitioning screen rectangles.
//
// Usage:
//
//	tile center --percent P [X Y W H]          Shrink a rectangle around its center
//	tile shave  --percent P --side S [X Y W H] Keep P percent, trimming side S
//	tile split  --percent P --side S [X Y W H] Split into two touching rectangles
//	tile render [flags] plan.yaml...           Preview tiling plans
//	tile check  plan.yaml...                   Validate plans and report overlaps
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

const version = "0.1.0"

const usage = `tile - percentage-based rectangle tiling

Usage:
  tile <command> [options] [args...]

Commands:
  center      Shrink a rectangle to a percentage of its size, centered
  shave       Trim one side so that a percentage of the rectangle remains
  split       Split a rectangle into two exactly touching pieces
  render      Resolve plan files and preview them as text, png or on screen
  check       Validate plan files and report overlapping panes
  version     Print version information
  help        Show this help message

Rectangle commands take X Y W H; without them the screen from --width and
--height at the origin is used. Put -- before negative coordinates.

Examples:
  tile split --percent 30 --side left 0 0 1920 1080
  tile center --percent 90 --width 2560 --height 1440
  tile shave -p 40 -s left -- -100 -100 100 100
  tile render -f png -o previews/ layouts/*.yaml
  tile render -f screen workspace.yaml
  tile check layouts/*.yaml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, stdout io.Writer) error {
	err := dispatch(command, args, stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}

func dispatch(command string, args []string, stdout io.Writer) error {
	switch command {
	case "center":
		return runCenter(args, stdout)
	case "shave":
		return runShave(args, stdout)
	case "split":
		return runSplit(args, stdout)
	case "render":
		return runRender(args, stdout)
	case "check":
		return runCheck(args, stdout)
	case "version":
		fmt.Fprintf(stdout, "tile version %s\n", version)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n\n%s", command, usage)
	}
}
