package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/adapters/config"
	"go.trai.ch/denv/internal/adapters/lockstore"
	"go.trai.ch/denv/internal/adapters/logger"
	"go.trai.ch/denv/internal/adapters/pip"
	"go.trai.ch/denv/internal/adapters/python"
	"go.trai.ch/denv/internal/adapters/shell"
	"go.trai.ch/denv/internal/adapters/venv"
	"go.trai.ch/denv/internal/core/ports"
)

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			pip.NodeID,
			python.NodeID,
			venv.NodeID,
			lockstore.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.InterpreterProbe](ctx)
			if err != nil {
				return nil, err
			}
			venvs, err := graft.Dep[ports.Venv](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(log, executor, installer, probe, venvs, store, settings),
				Logger: log,
			}, nil
		},
	})
}
