package ports

import (
	"context"

	"go.trai.ch/denv/internal/core/domain"
)

// InterpreterProbe discovers a Python interpreter and reports its version
// and platform.
//
//go:generate mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type InterpreterProbe interface {
	// Probe inspects the given interpreter binary, or discovers one on
	// PATH when binary is empty.
	Probe(ctx context.Context, binary string) (domain.Interpreter, error)
}
