package main

import (
	"context"
	"os"

	"coursecentral-backend/cmd/coursecentral/commands"
	"coursecentral-backend/lib/serviceutil"
	"coursecentral-backend/lib/telemetry"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	ctx := serviceutil.SignalContext()
	// telemetry is optional for local runs; a missing telemetry.json5
	// just means no OTLP export
	err := telemetry.SetupFromEnv(ctx, "coursecentral")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer telemetry.Shutdown(context.Background())
	telemetry.InitSlog(true)
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
