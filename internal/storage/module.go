// Package storage selects the user store backing the service.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/config"
	"github.com/polkiloo/userhub/internal/domain/repository"
	"github.com/polkiloo/userhub/internal/health"
	"github.com/polkiloo/userhub/internal/storage/memory"
	"github.com/polkiloo/userhub/internal/storage/postgres"
)

// Module wires PostgreSQL storage when DATABASE_URI is set and the
// in-memory store otherwise.
var Module = fx.Provide(newUserRepository)

type storageParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

type storageResult struct {
	fx.Out

	Users repository.UserRepository
	Probe health.Probe `group:"probes"`
}

func newUserRepository(p storageParams) (storageResult, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("DATABASE_URI not set, using in-memory user store")
		store := memory.New()
		return storageResult{Users: store, Probe: health.Probe{Name: "storage", Pinger: store}}, nil
	}

	st, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return storageResult{}, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			st.Close()
			return nil
		},
	})
	return storageResult{Users: st.Users(), Probe: health.Probe{Name: "postgres", Pinger: st}}, nil
}
