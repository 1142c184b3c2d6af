package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/session"
)

func init() {
	Register(&QuitCmd{})
}

// QuitCmd ends the session. Tasks are not kept.
type QuitCmd struct{}

func (c *QuitCmd) Name() string      { return "quit" }
func (c *QuitCmd) Aliases() []string { return []string{"exit"} }
func (c *QuitCmd) Synopsis() string  { return "End the session (tasks are discarded)" }
func (c *QuitCmd) Usage() string     { return "quit" }

func (c *QuitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *QuitCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	sess.End()
	return exitcode.Success
}
