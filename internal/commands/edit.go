package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"rename"} }
func (c *EditCmd) Synopsis() string  { return "Rename a task" }
func (c *EditCmd) Usage() string     { return "edit <ref> <name...>" }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	id, ok := resolveRefArg(sess, args, errOut)
	if !ok {
		return exitcode.UserError
	}

	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	if !sess.Edit(id, strings.Join(args[1:], " ")) {
		fmt.Fprintf(errOut, "error: no such task: %s\n", id)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
