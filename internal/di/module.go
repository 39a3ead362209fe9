package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/app"
	"github.com/polkiloo/userhub/internal/cache"
	"github.com/polkiloo/userhub/internal/config"
	"github.com/polkiloo/userhub/internal/logger"
	"github.com/polkiloo/userhub/internal/server/http/router"
	"github.com/polkiloo/userhub/internal/storage"
	"github.com/polkiloo/userhub/internal/usecase"
)

// Module assembles the userhub dependency graph. Extra options are applied
// last so callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		cache.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
