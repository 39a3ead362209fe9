package logger

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/config"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(func(cfg *config.Config) *slog.Logger {
	return New(cfg.LogLevel)
})
