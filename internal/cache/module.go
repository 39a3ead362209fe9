package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/config"
	"github.com/polkiloo/userhub/internal/domain/repository"
	"github.com/polkiloo/userhub/internal/health"
)

// Module provides the Redis cache when REDIS_URL is set and decorates the
// user repository with it.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Decorate(decorateUsers),
)

type cacheParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Lifecycle fx.Lifecycle
}

type cacheResult struct {
	fx.Out

	Cache *Cache
	Probe health.Probe `group:"probes"`
}

func newCache(p cacheParams) (cacheResult, error) {
	if p.Config.RedisURL == "" {
		return cacheResult{Probe: health.Probe{Name: "redis"}}, nil
	}

	c, err := New(p.Ctx, p.Config.RedisURL)
	if err != nil {
		return cacheResult{}, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return cacheResult{Cache: c, Probe: health.Probe{Name: "redis", Pinger: c}}, nil
}

type decorateParams struct {
	fx.In

	Users  repository.UserRepository
	Cache  *Cache
	Config *config.Config
	Logger *slog.Logger
}

func decorateUsers(p decorateParams) repository.UserRepository {
	if p.Cache == nil {
		return p.Users
	}
	return NewUserRepository(p.Users, p.Cache, p.Config.CacheTTL, p.Logger)
}
