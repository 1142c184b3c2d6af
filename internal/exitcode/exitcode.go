// Package exitcode defines exit codes for commands and the process.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad reference, unknown filter).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2

	// Interrupted indicates the shell was stopped by SIGINT or SIGTERM.
	Interrupted = 130
)
