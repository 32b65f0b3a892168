package application

import (
	"context"
	"time"

	"rbac-admin/internal/domain"
	"rbac-admin/internal/ports"
)

// UserService is the access surface for the user collection. Every operation
// resolves to an Envelope: validation failures never escape as errors, and a
// failed operation commits nothing. Uniqueness is always re-checked against
// the live repository at commit time, never against data read earlier.
type UserService struct {
	repo    ports.UserRepository
	ids     ports.IDSource
	logger  ports.Logger
	latency time.Duration
}

func NewUserService(repo ports.UserRepository, ids ports.IDSource, logger ports.Logger, latency time.Duration) *UserService {
	return &UserService{repo: repo, ids: ids, logger: logger, latency: latency}
}

func (s *UserService) List(ctx context.Context) domain.Envelope[[]domain.User] {
	simulateLatency(s.latency)
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list users failed", "error", err)
		return domain.Fail[[]domain.User]("Failed to fetch users")
	}
	return domain.OK(users)
}

func (s *UserService) Create(ctx context.Context, data domain.User) domain.Envelope[domain.User] {
	simulateLatency(s.latency)
	if err := domain.ValidateUserFields(data); err != nil {
		return failWith[domain.User](ctx, s.logger, "create user", "Failed to save user", err)
	}
	current, err := s.repo.List(ctx)
	if err != nil {
		return failWith[domain.User](ctx, s.logger, "create user", "Failed to save user", err)
	}
	if err := domain.ValidateUserUniqueness(data, current, 0); err != nil {
		return failWith[domain.User](ctx, s.logger, "create user", "Failed to save user", err)
	}
	data.ID = s.ids.NextID()
	if err := s.repo.Put(ctx, data); err != nil {
		return failWith[domain.User](ctx, s.logger, "create user", "Failed to save user", err)
	}
	return domain.OK(data)
}

func (s *UserService) Update(ctx context.Context, id int64, data domain.User) domain.Envelope[domain.User] {
	if id <= 0 {
		return domain.Fail[domain.User](domain.ErrInvalidUserID.Error())
	}
	simulateLatency(s.latency)
	if err := domain.ValidateUserFields(data); err != nil {
		return failWith[domain.User](ctx, s.logger, "update user", "Failed to save user", err)
	}
	current, err := s.repo.List(ctx)
	if err != nil {
		return failWith[domain.User](ctx, s.logger, "update user", "Failed to save user", err)
	}
	if err := domain.ValidateUserUniqueness(data, current, id); err != nil {
		return failWith[domain.User](ctx, s.logger, "update user", "Failed to save user", err)
	}
	data.ID = id
	if err := s.repo.Put(ctx, data); err != nil {
		return failWith[domain.User](ctx, s.logger, "update user", "Failed to save user", err)
	}
	return domain.OK(data)
}

func (s *UserService) Delete(ctx context.Context, id int64) domain.Envelope[domain.Deleted] {
	if id <= 0 {
		return domain.Fail[domain.Deleted](domain.ErrInvalidUserID.Error())
	}
	simulateLatency(s.latency)
	if err := s.repo.Remove(ctx, id); err != nil {
		return failWith[domain.Deleted](ctx, s.logger, "delete user", "Failed to delete user", err)
	}
	// A valid-looking but absent id still deletes successfully.
	return domain.OK(domain.Deleted{DeletedID: id})
}

// RoleService is the access surface for the role collection. All role
// mutation funnels through the validated update path, the permission-matrix
// toggle included.
type RoleService struct {
	repo    ports.RoleRepository
	ids     ports.IDSource
	logger  ports.Logger
	latency time.Duration
}

func NewRoleService(repo ports.RoleRepository, ids ports.IDSource, logger ports.Logger, latency time.Duration) *RoleService {
	return &RoleService{repo: repo, ids: ids, logger: logger, latency: latency}
}

func (s *RoleService) List(ctx context.Context) domain.Envelope[[]domain.Role] {
	simulateLatency(s.latency)
	roles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list roles failed", "error", err)
		return domain.Fail[[]domain.Role]("Failed to fetch roles")
	}
	return domain.OK(roles)
}

func (s *RoleService) Create(ctx context.Context, data domain.Role) domain.Envelope[domain.Role] {
	simulateLatency(s.latency)
	if err := domain.ValidateRoleFields(data); err != nil {
		return failWith[domain.Role](ctx, s.logger, "create role", "Failed to save role", err)
	}
	current, err := s.repo.List(ctx)
	if err != nil {
		return failWith[domain.Role](ctx, s.logger, "create role", "Failed to save role", err)
	}
	if err := domain.ValidateRoleUniqueness(data, current, 0); err != nil {
		return failWith[domain.Role](ctx, s.logger, "create role", "Failed to save role", err)
	}
	data.ID = s.ids.NextID()
	if err := s.repo.Put(ctx, data); err != nil {
		return failWith[domain.Role](ctx, s.logger, "create role", "Failed to save role", err)
	}
	return domain.OK(data)
}

func (s *RoleService) Update(ctx context.Context, id int64, data domain.Role) domain.Envelope[domain.Role] {
	if id <= 0 {
		return domain.Fail[domain.Role](domain.ErrInvalidRoleID.Error())
	}
	simulateLatency(s.latency)
	if err := domain.ValidateRoleFields(data); err != nil {
		return failWith[domain.Role](ctx, s.logger, "update role", "Failed to save role", err)
	}
	current, err := s.repo.List(ctx)
	if err != nil {
		return failWith[domain.Role](ctx, s.logger, "update role", "Failed to save role", err)
	}
	if err := domain.ValidateRoleUniqueness(data, current, id); err != nil {
		return failWith[domain.Role](ctx, s.logger, "update role", "Failed to save role", err)
	}
	data.ID = id
	if err := s.repo.Put(ctx, data); err != nil {
		return failWith[domain.Role](ctx, s.logger, "update role", "Failed to save role", err)
	}
	return domain.OK(data)
}

func (s *RoleService) Delete(ctx context.Context, id int64) domain.Envelope[domain.Deleted] {
	if id <= 0 {
		return domain.Fail[domain.Deleted](domain.ErrInvalidRoleID.Error())
	}
	simulateLatency(s.latency)
	if err := s.repo.Remove(ctx, id); err != nil {
		return failWith[domain.Deleted](ctx, s.logger, "delete role", "Failed to delete role", err)
	}
	return domain.OK(domain.Deleted{DeletedID: id})
}

// SetPermission toggles a single catalog permission on a role. The result is
// committed through Update, so stripping the last permission fails with the
// same empty-permission-set rule as any other edit.
func (s *RoleService) SetPermission(ctx context.Context, id int64, perm domain.Permission, enabled bool) domain.Envelope[domain.Role] {
	if id <= 0 {
		return domain.Fail[domain.Role](domain.ErrInvalidRoleID.Error())
	}
	current, err := s.repo.List(ctx)
	if err != nil {
		return failWith[domain.Role](ctx, s.logger, "toggle permission", "Failed to save role", err)
	}
	var target *domain.Role
	for i := range current {
		if current[i].ID == id {
			target = &current[i]
			break
		}
	}
	if target == nil {
		return domain.Fail[domain.Role](domain.ErrRoleNotFound.Error())
	}
	perms := make([]domain.Permission, 0, len(target.Permissions)+1)
	for _, p := range target.Permissions {
		if p != perm {
			perms = append(perms, p)
		}
	}
	if enabled {
		perms = append(perms, perm)
	}
	return s.Update(ctx, id, domain.Role{Name: target.Name, Permissions: perms})
}

// simulateLatency models the remote round trip of the reference design. The
// sleep is deliberately not tied to ctx: an abandoned call still commits once
// the delay elapses.
func simulateLatency(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func failWith[T any](ctx context.Context, logger ports.Logger, op, generic string, err error) domain.Envelope[T] {
	if domain.IsValidationError(err) {
		return domain.Fail[T](err.Error())
	}
	logger.Error(ctx, op+" failed", "error", err)
	return domain.Fail[T](generic)
}
