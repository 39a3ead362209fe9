package test

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
)

// UserServiceStub provides controllable behaviour for user endpoints.
type UserServiceStub struct {
	ListFn   func(context.Context) ([]model.User, error)
	GetFn    func(context.Context, int64) (*model.User, error)
	SaveFn   func(context.Context, *model.User) (*model.User, error)
	UpdateFn func(context.Context, int64, *model.User) (*model.User, error)
	DeleteFn func(context.Context, int64) error
}

// List delegates to provided function or returns a single user.
func (s UserServiceStub) List(ctx context.Context) ([]model.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.User{{ID: 1, Name: "Alice", Email: "alice@example.com"}}, nil
}

// Get delegates to provided function or echoes the id.
func (s UserServiceStub) Get(ctx context.Context, id int64) (*model.User, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Alice", Email: "alice@example.com"}, nil
}

// Save delegates to provided function or assigns id 1 to new users.
func (s UserServiceStub) Save(ctx context.Context, user *model.User) (*model.User, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, user)
	}
	saved := *user
	if saved.ID == 0 {
		saved.ID = 1
	}
	return &saved, nil
}

// Update delegates to provided function or returns the user under id.
func (s UserServiceStub) Update(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, user)
	}
	updated := *user
	updated.ID = id
	return &updated, nil
}

// Delete delegates to provided function or succeeds.
func (s UserServiceStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// PingerStub reports a fixed health result.
type PingerStub struct {
	Err error
}

// Ping returns the configured error.
func (p PingerStub) Ping(context.Context) error {
	return p.Err
}
