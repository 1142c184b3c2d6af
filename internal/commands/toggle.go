package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/session"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done", "check"} }
func (c *ToggleCmd) Synopsis() string  { return "Mark a task completed or active" }
func (c *ToggleCmd) Usage() string     { return "toggle <ref>" }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	id, ok := resolveRefArg(sess, args, errOut)
	if !ok {
		return exitcode.UserError
	}

	if !sess.Toggle(id) {
		fmt.Fprintf(errOut, "error: no such task: %s\n", id)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
