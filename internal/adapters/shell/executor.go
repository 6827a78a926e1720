// Package shell provides the executor adapter for external processes.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command and waits for it to finish. Non-interactive
// output is streamed line-wise through the logger; interactive commands
// inherit the caller's terminal so exit behavior matches running the
// program directly.
func (e *Executor) Run(ctx context.Context, command ports.Command) error {
	e.echo(command)
	cmd := e.build(ctx, command)

	if command.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &logWriter{logger: e.logger}
		cmd.Stderr = &logWriter{logger: e.logger, warn: true}
	}

	if err := cmd.Run(); err != nil {
		return wrapRunError(err)
	}
	return nil
}

// Output executes the command and returns its captured stdout. Stderr is
// drained concurrently into the logger so a chatty process cannot block
// on a full pipe.
func (e *Executor) Output(ctx context.Context, command ports.Command) (string, error) {
	e.echo(command)
	cmd := e.build(ctx, command)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return "", zerr.Wrap(err, "failed to start process")
	}

	var buf bytes.Buffer
	g := &errgroup.Group{}
	g.Go(func() error {
		_, copyErr := io.Copy(&buf, stdout)
		return copyErr
	})
	g.Go(func() error {
		_, copyErr := io.Copy(&logWriter{logger: e.logger, warn: true}, stderr)
		return copyErr
	})

	drainErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return buf.String(), wrapRunError(err)
	}
	if drainErr != nil {
		return buf.String(), zerr.Wrap(drainErr, "failed to read process output")
	}

	return buf.String(), nil
}

// echo logs the command about to run so users can reproduce it by hand.
func (e *Executor) echo(command ports.Command) {
	e.logger.Info("$ " + command.Name + " " + strings.Join(command.Args, " "))
}

func (e *Executor) build(ctx context.Context, command ports.Command) *exec.Cmd {
	name := command.Name

	// Resolve the executable path explicitly so the original name can be
	// preserved in Args[0].
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := exec.LookPath(name); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // caller provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if command.Dir != "" {
		cmd.Dir = command.Dir
	}

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, command.Env...)

	return cmd
}

func wrapRunError(err error) error {
	exitCode := -1 // unknown or signal
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "exit_code", exitCode)
}

// logWriter streams process output line-wise into the logger. Stderr
// writers are marked warn so noise from external tools stands out
// without being treated as a denv failure.
type logWriter struct {
	logger ports.Logger
	warn   bool
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := string(p)

	lines := strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
	for _, line := range lines {
		if w.warn {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
