package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/session"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints one task including its ID.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Print a task and its ID" }
func (c *ShowCmd) Usage() string     { return "show <ref>" }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	id, ok := resolveRefArg(sess, args, errOut)
	if !ok {
		return exitcode.UserError
	}

	t, found := sess.Get(id)
	if !found {
		fmt.Fprintf(errOut, "error: no such task: %s\n", id)
		return exitcode.UserError
	}

	output.FormatTaskDetail(out, t)
	return exitcode.Success
}
