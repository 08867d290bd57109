// Command worker consumes delivery status events and advances order delivery state.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"delivery-matching/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
