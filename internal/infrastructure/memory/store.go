package memory

import (
	"context"
	"sync"

	"rbac-admin/internal/domain"
)

// Store is the reference in-memory entity store. It owns both collections
// exclusively; callers receive copies and insertion order is preserved for
// deterministic listing. Contents are volatile and lost on process exit.
type Store struct {
	mu    sync.RWMutex
	users []domain.User
	roles []domain.Role
}

func NewStore() *Store {
	return &Store{}
}

// Seed replaces the store contents with fixture data. Meant to run once at
// startup; all later reads go through the live collections, never the seed.
func (s *Store) Seed(users []domain.User, roles []domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]domain.User(nil), users...)
	s.roles = make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		s.roles = append(s.roles, copyRole(r))
	}
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.User, len(r.store.users))
	copy(out, r.store.users)
	return out, nil
}

func (r *UserRepository) Put(ctx context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if r.store.users[i].ID == user.ID {
			r.store.users[i] = user
			return nil
		}
	}
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *UserRepository) Remove(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if r.store.users[i].ID == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type RoleRepository struct {
	store *Store
}

func NewRoleRepository(store *Store) *RoleRepository {
	return &RoleRepository{store: store}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Role, 0, len(r.store.roles))
	for _, role := range r.store.roles {
		out = append(out, copyRole(role))
	}
	return out, nil
}

func (r *RoleRepository) Put(ctx context.Context, role domain.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := copyRole(role)
	for i := range r.store.roles {
		if r.store.roles[i].ID == role.ID {
			r.store.roles[i] = stored
			return nil
		}
	}
	r.store.roles = append(r.store.roles, stored)
	return nil
}

func (r *RoleRepository) Remove(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.roles {
		if r.store.roles[i].ID == id {
			r.store.roles = append(r.store.roles[:i], r.store.roles[i+1:]...)
			return nil
		}
	}
	return nil
}

// copyRole detaches the permission slice so derived views cannot mutate the
// stored record.
func copyRole(role domain.Role) domain.Role {
	role.Permissions = append([]domain.Permission(nil), role.Permissions...)
	return role
}
