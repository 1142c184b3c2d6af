package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/filter"
	"todo/internal/output"
	"todo/internal/session"
	"todo/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Prints the heading followed by the visible tasks.
type ListCmd struct {
	filterName string
}

// SetFilter sets the one-shot filter (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filterName = name
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List visible tasks" }
func (c *ListCmd) Usage() string     { return "list [--filter <name>]" }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filterName, "filter", "", "")
	fs.StringVar(&c.filterName, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	var tasks []task.Task
	if c.filterName == "" {
		tasks = sess.Visible()
	} else {
		name, err := filter.Parse(c.filterName)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		tasks, err = sess.VisibleWith(name)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	PrintTasks(out, tasks)
	return exitcode.Success
}

// PrintTasks writes the heading and the numbered task lines.
func PrintTasks(w io.Writer, tasks []task.Task) {
	output.FormatHeading(w, len(tasks))
	for i, t := range tasks {
		output.FormatTask(w, i+1, t)
	}
}
