package app

import (
	"log/slog"
	"os"

	"delivery-matching/internal/logx"
)

// NewLogger returns the JSON logger shared by the API and the worker.
func NewLogger() logx.Logger {
	return logx.NewJSON(os.Stdout, slog.LevelInfo).With(logx.String("service", "delivery-matching"))
}
