// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shrink/internal/adapters/closure"
	_ "go.trai.ch/shrink/internal/adapters/config"
	_ "go.trai.ch/shrink/internal/adapters/cssmin"
	_ "go.trai.ch/shrink/internal/adapters/esbuild"
	_ "go.trai.ch/shrink/internal/adapters/filecache"
	_ "go.trai.ch/shrink/internal/adapters/logger"
	_ "go.trai.ch/shrink/internal/adapters/shell"
	_ "go.trai.ch/shrink/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/shrink/internal/app"
	_ "go.trai.ch/shrink/internal/engine/minify"
	_ "go.trai.ch/shrink/internal/engine/resolver"
)
