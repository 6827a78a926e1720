// Package python provides the interpreter probe adapter.
package python

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// infoScript is executed inside the target interpreter so version and
// platform are reported by the interpreter actually in use, not by the
// one denv happens to find first. Keep the line count in sync with
// parseInfo.
const infoScript = `import platform
import sys
print(platform.python_version())
print(sys.platform)`

// Probe implements ports.InterpreterProbe by running a small inline
// script inside the interpreter.
type Probe struct {
	executor ports.Executor
}

// NewProbe creates a new Probe.
func NewProbe(executor ports.Executor) *Probe {
	return &Probe{executor: executor}
}

// Probe inspects the given interpreter binary, or discovers one on PATH
// when binary is empty.
func (p *Probe) Probe(ctx context.Context, binary string) (domain.Interpreter, error) {
	resolved, err := resolveBinary(binary)
	if err != nil {
		return domain.Interpreter{}, err
	}

	out, err := p.executor.Output(ctx, ports.Command{
		Name: resolved,
		Args: []string{"-c", infoScript},
	})
	if err != nil {
		return domain.Interpreter{}, zerr.Wrap(err, "failed to run interpreter info script")
	}

	version, platform, err := parseInfo(out)
	if err != nil {
		return domain.Interpreter{}, err
	}

	return domain.Interpreter{
		Binary:   resolved,
		Version:  version,
		Platform: platform,
	}, nil
}

// resolveBinary honors an explicit binary and otherwise searches PATH,
// preferring python3 over the unversioned name.
func resolveBinary(binary string) (string, error) {
	if binary != "" {
		return binary, nil
	}
	if p, err := exec.LookPath("python3"); err == nil {
		return p, nil
	}
	if p, err := exec.LookPath("python"); err == nil {
		return p, nil
	}
	return "", domain.ErrNoPythonFound
}

func parseInfo(out string) (version, platform string, err error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		return "", "", zerr.With(zerr.New("unexpected interpreter info output"), "lines", len(lines))
	}
	return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
}
