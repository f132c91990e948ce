package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-tile/internal/config"
	"github.com/grindlemire/go-tile/internal/log"
	"github.com/grindlemire/go-tile/internal/plan"
	"github.com/grindlemire/go-tile/internal/render"
)

// runRender implements the render subcommand.
// Plans are loaded and rendered in parallel; text output is written in argument order.
func runRender(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	cfg, done, err := setup(fs, args, stdout)
	if err != nil {
		return err
	}
	defer done()

	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("no plan files given")
	}

	if cfg.Format == config.FormatScreen {
		if len(paths) != 1 {
			return fmt.Errorf("screen preview takes one plan, got %d", len(paths))
		}
		return previewScreen(paths[0])
	}

	if cfg.Format == config.FormatPNG || (cfg.Output != "" && len(paths) > 1) {
		if err := checkOutputNames(paths); err != nil {
			return err
		}
	}

	outputs := make([]bytes.Buffer, len(paths))
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := renderPlan(path, cfg, &outputs[i]); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Format != config.FormatText {
		return nil
	}
	return writeText(paths, outputs, cfg.Output, stdout)
}

// renderPlan resolves one plan. PNG output is written straight to the output
// directory; text output is left in buf.
func renderPlan(path string, cfg config.Config, buf *bytes.Buffer) error {
	p, panes, err := resolvePlan(path)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case config.FormatPNG:
		dir := cfg.Output
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		out := filepath.Join(dir, baseName(path)+".png")
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := render.PNG(f, p.Bounds(), panes, cfg.MaxSide); err != nil {
			f.Close()
			return err
		}
		log.Info("wrote preview", "plan", path, "file", out)
		return f.Close()
	default:
		return render.Text(buf, p.Bounds(), panes, cfg.Cols, cfg.Rows)
	}
}

// writeText sends rendered text to stdout, a single file, or one file per plan
// inside a directory when several plans are rendered.
func writeText(paths []string, outputs []bytes.Buffer, output string, stdout io.Writer) error {
	if output == "" {
		for i, path := range paths {
			if len(paths) > 1 {
				fmt.Fprintf(stdout, "== %s\n", path)
			}
			if _, err := outputs[i].WriteTo(stdout); err != nil {
				return err
			}
		}
		return nil
	}

	if len(paths) == 1 {
		return os.WriteFile(output, outputs[0].Bytes(), 0644)
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, path := range paths {
		out := filepath.Join(output, baseName(path)+".txt")
		if err := os.WriteFile(out, outputs[i].Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

func previewScreen(path string) error {
	p, panes, err := resolvePlan(path)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	return render.Preview(screen, p.Bounds(), panes)
}

func resolvePlan(path string) (*plan.Plan, []plan.Pane, error) {
	p, err := plan.Load(path)
	if err != nil {
		return nil, nil, err
	}
	panes, err := p.Resolve()
	if err != nil {
		return nil, nil, err
	}
	log.Debug("resolved plan", "plan", path, "panes", len(panes))
	return p, panes, nil
}

// checkOutputNames rejects plans that would write the same output file.
func checkOutputNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := baseName(path)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s would both write output %q", prev, path, name)
		}
		seen[name] = path
	}
	return nil
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
