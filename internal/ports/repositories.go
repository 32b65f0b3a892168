package ports

import (
	"context"

	"rbac-admin/internal/domain"
)

// UserRepository is the entity store surface for users. List returns the
// current collection in insertion order; Put upserts preserving position;
// Remove is a no-op for absent ids.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Put(ctx context.Context, user domain.User) error
	Remove(ctx context.Context, id int64) error
}

type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	Put(ctx context.Context, role domain.Role) error
	Remove(ctx context.Context, id int64) error
}
