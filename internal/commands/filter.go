package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/filter"
	"todo/internal/output"
	"todo/internal/session"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command.
// With no args it prints the filter bar; with a name it selects that filter.
type FilterCmd struct{}

func (c *FilterCmd) Name() string      { return "filter" }
func (c *FilterCmd) Aliases() []string { return nil }
func (c *FilterCmd) Synopsis() string  { return "Show or select the active filter" }
func (c *FilterCmd) Usage() string     { return "filter [All|Active|Completed]" }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		output.FormatFilterBar(out, sess.Filter())
		return exitcode.Success
	}

	name, err := filter.Parse(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := sess.SetFilter(name); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
