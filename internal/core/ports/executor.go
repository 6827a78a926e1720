package ports

import "context"

// Command describes one external process invocation.
type Command struct {
	// Name is the executable to run; resolved against PATH unless absolute.
	Name string

	// Args are the process arguments, not including the executable.
	Args []string

	// Dir is the working directory; empty means the caller's cwd.
	Dir string

	// Env contains additional environment entries in KEY=VALUE form,
	// merged over the inherited environment.
	Env []string

	// Interactive attaches the process directly to the caller's
	// stdin/stdout/stderr instead of streaming output through the logger.
	Interactive bool
}

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command and waits for it to finish.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its captured stdout.
	// Stderr is streamed through the logger.
	Output(ctx context.Context, cmd Command) (string, error)
}
