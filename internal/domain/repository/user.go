package repository

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// GetByID returns errors.ErrNotFound when no user has the given id.
// Save inserts users with a zero or unknown id and assigns a fresh one,
// otherwise it overwrites the stored record. Update only overwrites an
// existing record and returns errors.ErrNotFound otherwise. Delete of a
// missing id is a no-op.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
