package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/grindlemire/go-tile/internal/log"
	"github.com/grindlemire/go-tile/internal/plan"
)

// runCheck implements the check subcommand.
// Every plan is checked even after a failure; the error reports how many failed.
func runCheck(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	_, done, err := setup(fs, args, stdout)
	if err != nil {
		return err
	}
	defer done()

	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("no plan files given")
	}

	var failed int
	for _, path := range paths {
		if err := checkPlan(path, stdout); err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", path, err)
			log.Warn("plan failed check", "plan", path, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d plan(s) failed", failed)
	}
	return nil
}

func checkPlan(path string, stdout io.Writer) error {
	p, panes, err := resolvePlan(path)
	if err != nil {
		return err
	}

	bounds := p.Bounds()
	for _, pane := range panes {
		if !bounds.ContainsRect(pane.Rect) {
			fmt.Fprintf(stdout, "%s: warning: %s %v extends past the screen %v\n", path, pane.Name, pane.Rect, bounds)
		}
	}

	if overlaps := plan.Overlaps(panes); len(overlaps) > 0 {
		for _, o := range overlaps {
			fmt.Fprintf(stdout, "%s: %s overlaps %s\n", path, o.A, o.B)
		}
		return fmt.Errorf("%d overlapping pane pair(s)", len(overlaps))
	}

	fmt.Fprintf(stdout, "%s: ok, %d panes\n", path, len(panes))
	return nil
}
