package main

import (
	"context"
	"log/slog"

	"facultyhub-backend/cmd/faculty-cli/commands"
	"facultyhub-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.InitSlog(true)

	t, err := telemetry.SetupFromEnv(ctx, "faculty-cli")
	if err == nil {
		defer t.Shutdown(context.Background())
	} else {
		slog.Debug("telemetry not configured", "err", err)
	}

	commands.ExecuteContext(ctx)
}
