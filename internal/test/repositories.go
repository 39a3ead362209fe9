package test

import (
	"context"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID      map[int64]*model.User
	Next      int64
	Err       error
	DeleteErr error
	Deleted   []int64
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByID: make(map[int64]*model.User),
		Next: 1,
	}
}

// List returns stored users ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for id := int64(1); id < s.Next; id++ {
		if u, ok := s.ByID[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		u := *user
		return &u, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save overwrites known ids and assigns the next id otherwise.
func (s *UserRepositoryStub) Save(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	if _, exists := s.ByID[stored.ID]; !exists {
		stored.ID = s.Next
		s.Next++
	}
	s.ByID[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Update overwrites known ids only.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByID[user.ID]; !exists {
		return nil, domainErrors.ErrNotFound
	}
	stored := *user
	s.ByID[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Delete records the call and removes the user.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.Deleted = append(s.Deleted, id)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.ByID, id)
	return nil
}
