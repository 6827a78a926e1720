package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/adapters/shell"
	"go.trai.ch/denv/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter probe Graft node.
const NodeID graft.ID = "adapter.python_probe"

func init() {
	graft.Register(graft.Node[ports.InterpreterProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.InterpreterProbe, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(executor), nil
		},
	})
}
