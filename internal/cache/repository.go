package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/domain/repository"
)

// UserStore is the subset of cache operations used by UserRepository.
type UserStore interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	SetUser(ctx context.Context, user *model.User, ttl time.Duration) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserRepository adds cache-aside lookups by id on top of another repository.
// Cache failures are logged and never fail the request.
type UserRepository struct {
	next   repository.UserRepository
	cache  UserStore
	ttl    time.Duration
	logger *slog.Logger
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository wraps next with cache.
func NewUserRepository(next repository.UserRepository, cache UserStore, ttl time.Duration, logger *slog.Logger) *UserRepository {
	return &UserRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.next.List(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	cached, err := r.cache.GetUser(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("user cache read failed", slog.Int64("user_id", id), slog.String("error", err.Error()))
	}

	user, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetUser(ctx, user, r.ttl); err != nil {
		r.logger.Warn("user cache write failed", slog.Int64("user_id", id), slog.String("error", err.Error()))
		return user, nil
	}

	// A write between the read and the fill evicts before the fill lands,
	// so confirm the filled record against the store.
	current, err := r.next.GetByID(ctx, id)
	if err != nil {
		r.evict(ctx, id)
		return nil, err
	}
	if *current != *user {
		r.evict(ctx, id)
	}
	return current, nil
}

func (r *UserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	saved, err := r.next.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, saved.ID)
	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	updated, err := r.next.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, updated.ID)
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *UserRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.DeleteUser(ctx, id); err != nil {
		r.logger.Warn("user cache eviction failed", slog.Int64("user_id", id), slog.String("error", err.Error()))
	}
}
