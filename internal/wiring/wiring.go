// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/denv/internal/adapters/config"
	_ "go.trai.ch/denv/internal/adapters/lockstore"
	_ "go.trai.ch/denv/internal/adapters/logger"
	_ "go.trai.ch/denv/internal/adapters/pip"
	_ "go.trai.ch/denv/internal/adapters/python"
	_ "go.trai.ch/denv/internal/adapters/shell"
	_ "go.trai.ch/denv/internal/adapters/venv"
	// Register app nodes.
	_ "go.trai.ch/denv/internal/app"
)
