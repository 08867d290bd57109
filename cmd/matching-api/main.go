// Command matching-api serves the driver nearby-orders API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"delivery-matching/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
