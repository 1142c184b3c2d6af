package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"

	"todo/internal/exitcode"
	"todo/internal/output"
)

// Shell reads command lines and dispatches them against one session.
type Shell struct {
	dispatcher *Dispatcher
	prompt     string
	logger     *log.Logger
}

// NewShell creates a shell. An empty prompt disables prompting.
func NewShell(d *Dispatcher, prompt string, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{
		dispatcher: d,
		prompt:     prompt,
		logger:     logger,
	}
}

// inputLine is one line read from the shell's input, or the read error
// that ended it.
type inputLine struct {
	text string
	err  error
}

// readLines reads in on its own goroutine so that a blocked read never
// holds up cancellation. Lines have no length limit. The channel is closed
// at EOF; the goroutine stops early once done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			text, err := r.ReadString('\n')
			if text != "" {
				select {
				case lines <- inputLine{text: text}:
				case <-done:
					return
				}
			}
			if err == nil {
				continue
			}
			if err != io.EOF {
				select {
				case lines <- inputLine{err: err}:
				case <-done:
				}
			}
			return
		}
	}()
	return lines
}

// Run reads lines from in until EOF, quit, or ctx is cancelled.
// Blank lines and lines starting with # are ignored. Returns the exit code
// for the process.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	sess := s.dispatcher.Session()

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		if ctx.Err() != nil {
			s.logger.Debug("shell cancelled")
			return exitcode.Interrupted
		}

		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}

		var next inputLine
		var ok bool
		select {
		case <-ctx.Done():
			s.logger.Debug("shell cancelled")
			return exitcode.Interrupted
		case next, ok = <-lines:
		}
		if !ok {
			break
		}
		if next.err != nil {
			fmt.Fprintf(errOut, "error: reading input: %v\n", next.err)
			return exitcode.UserError
		}

		line := strings.TrimSpace(next.text)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		code := s.dispatcher.Run(ctx, args, out, errOut)
		s.logger.Debug("command finished", "command", args[0], "exit_code", code)

		// The collection shrank by one: a task was deleted. Bring the
		// heading back so the remaining count is in view.
		if sess.HeadingFocus() {
			output.FormatHeading(out, sess.Remaining())
		}

		if sess.Ended() {
			return exitcode.Success
		}
	}

	if s.prompt != "" {
		fmt.Fprintln(out)
	}
	return exitcode.Success
}
