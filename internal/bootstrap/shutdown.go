package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftLedger_Go/internal/database"
	"github.com/osse101/CraftLedger_Go/internal/server"
	"github.com/osse101/CraftLedger_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	SSEHub *sse.Hub
	Pool   database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. SSE hub (disconnect change feed clients)
// 3. Store (after in-flight writes have committed)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.SSEHub != nil {
		slog.Info(LogMsgStoppingSSEHub)
		components.SSEHub.Stop()
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingStore)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
