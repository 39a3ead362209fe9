package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/userhub/internal/config"
	"github.com/polkiloo/userhub/internal/storage/memory"
)

func TestNewCacheDisabledWithoutURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	res, err := newCache(cacheParams{Ctx: context.Background(), Config: &config.Config{}, Lifecycle: lc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cache != nil {
		t.Fatal("expected no cache")
	}
	if res.Probe.Name != "redis" || res.Probe.Pinger != nil {
		t.Fatalf("expected unconfigured redis probe, got %+v", res.Probe)
	}
}

func TestNewCacheRejectsBadURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	_, err := newCache(cacheParams{Ctx: context.Background(), Config: &config.Config{RedisURL: "://bad"}, Lifecycle: lc})
	if err == nil {
		t.Fatal("expected error for malformed redis url")
	}
}

func TestDecorateUsers(t *testing.T) {
	store := memory.New()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	got := decorateUsers(decorateParams{Users: store, Config: &config.Config{}, Logger: logger})
	if got != store {
		t.Fatalf("expected repository untouched without cache, got %T", got)
	}

	got = decorateUsers(decorateParams{Users: store, Cache: &Cache{}, Config: &config.Config{}, Logger: logger})
	if _, ok := got.(*UserRepository); !ok {
		t.Fatalf("expected cached repository, got %T", got)
	}
}
