package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/session"
)

// Main parses startup flags, builds the session and either runs the
// remaining args as a single command or starts the shell on in.
func Main(ctx context.Context, registry *commands.Registry, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %v\n", err)
		return exitcode.ConfigError
	}
	if quiet {
		cfg.Quiet = true
	}
	if debug {
		cfg.Debug = true
	}

	logger := logging.New(errOut, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Debug:  cfg.Debug,
	})
	logger.Debug("config loaded", "dir", cfg.Dir, "file", cfg.HasConfigFile(), "filter", cfg.DefaultFilter)

	sess := session.New(session.WithLogger(logger))
	if err := sess.SetFilter(cfg.DefaultFilter); err != nil {
		fmt.Fprintf(errOut, "error: config error: %v\n", err)
		return exitcode.ConfigError
	}

	dispatcher := NewDispatcher(registry, cfg, sess)

	// Remaining args run as one command against a fresh session.
	if rest := fs.Args(); len(rest) > 0 {
		return dispatcher.Run(ctx, rest, out, errOut)
	}

	prompt := cfg.Prompt
	if cfg.Quiet {
		prompt = ""
	}
	return NewShell(dispatcher, prompt, logger).Run(ctx, in, out, errOut)
}
