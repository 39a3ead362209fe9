package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/domain/repository"
)

// UserUseCase enforces existence semantics around the user repository.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns every stored user in store order.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get fetches user by id, failing with errors.ErrNotFound when absent.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// Save upserts the user and returns the stored record with its id.
func (u *UserUseCase) Save(ctx context.Context, user *model.User) (*model.User, error) {
	saved, err := u.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return saved, nil
}

// Update overwrites an existing user, failing with errors.ErrNotFound when
// id is unknown. It never inserts.
func (u *UserUseCase) Update(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	changed := *user
	changed.ID = id
	updated, err := u.users.Update(ctx, &changed)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes user by id, failing with errors.ErrNotFound when absent.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
