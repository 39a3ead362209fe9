package handlers

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
)

// UserService describes user operations exposed via HTTP.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, id int64, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
