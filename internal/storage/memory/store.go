// Package memory provides an in-process user store.
package memory

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/domain/repository"
)

// Store keeps users in a map keyed by id. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	users  map[int64]model.User
	nextID int64
}

var _ repository.UserRepository = (*Store)(nil)

// New creates an empty store whose first assigned id is 1.
func New() *Store {
	return &Store{users: make(map[int64]model.User), nextID: 1}
}

// List returns users ordered by id.
func (s *Store) List(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

// Save overwrites the user stored under user.ID, or inserts it under a
// freshly assigned id when the id is zero or unknown.
func (s *Store) Save(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	if _, ok := s.users[stored.ID]; !ok || stored.IsNew() {
		stored.ID = s.nextID
		s.nextID++
	}
	s.users[stored.ID] = stored
	return &stored, nil
}

// Update overwrites the user stored under user.ID.
func (s *Store) Update(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *user
	s.users[stored.ID] = stored
	return &stored, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}
