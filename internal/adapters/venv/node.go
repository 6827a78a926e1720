package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/adapters/logger"
	"go.trai.ch/denv/internal/adapters/shell"
	"go.trai.ch/denv/internal/core/ports"
)

// NodeID is the unique identifier for the venv manager Graft node.
const NodeID graft.ID = "adapter.venv"

func init() {
	graft.Register(graft.Node[ports.Venv]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Venv, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(executor, log), nil
		},
	})
}
