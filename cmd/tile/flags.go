package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/grindlemire/go-tile/internal/config"
	"github.com/grindlemire/go-tile/internal/layout"
	"github.com/grindlemire/go-tile/internal/log"
)

// setup parses args for a subcommand, loads the config and starts logging.
// The returned func closes the log. Flag help goes to stdout; parse errors
// are only returned, main prints them.
func setup(fs *pflag.FlagSet, args []string, stdout io.Writer) (config.Config, func(), error) {
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "Usage of tile %s:\n%s", fs.Name(), fs.FlagUsages())
		}
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := log.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log.Close, nil
}

// parseRect reads X Y W H from args, or falls back to the configured screen at the origin.
func parseRect(args []string, cfg config.Config) (layout.Rect, error) {
	switch len(args) {
	case 0:
		return layout.NewRect(0, 0, cfg.Width, cfg.Height), nil
	case 4:
	default:
		return layout.Rect{}, fmt.Errorf("expected X Y W H, got %d argument(s)", len(args))
	}

	var xy [2]int32
	for i, name := range []string{"x", "y"} {
		v, err := strconv.ParseInt(args[i], 10, 32)
		if err != nil {
			return layout.Rect{}, fmt.Errorf("invalid %s %q: %w", name, args[i], err)
		}
		xy[i] = int32(v)
	}
	var wh [2]uint32
	for i, name := range []string{"width", "height"} {
		v, err := strconv.ParseUint(args[i+2], 10, 32)
		if err != nil {
			return layout.Rect{}, fmt.Errorf("invalid %s %q: %w", name, args[i+2], err)
		}
		wh[i] = uint32(v)
	}
	return layout.NewRect(xy[0], xy[1], wh[0], wh[1]), nil
}

// sideFlag adapts layout.Side to pflag.Value.
type sideFlag struct {
	side layout.Side
}

func (s *sideFlag) String() string     { return s.side.String() }
func (s *sideFlag) Type() string       { return "side" }
func (s *sideFlag) Set(v string) error { return s.side.UnmarshalText([]byte(v)) }
