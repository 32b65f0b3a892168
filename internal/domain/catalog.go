package domain

// Permission is an atomic capability identifier granted through role membership.
type Permission string

const (
	PermCreateUser  Permission = "create_user"
	PermEditUser    Permission = "edit_user"
	PermDeleteUser  Permission = "delete_user"
	PermManageRoles Permission = "manage_roles"
	PermViewUsers   Permission = "view_users"
)

var catalog = []Permission{
	PermCreateUser,
	PermEditUser,
	PermDeleteUser,
	PermManageRoles,
	PermViewUsers,
}

// Catalog returns the fixed set of assignable permissions. Callers receive a
// copy and cannot mutate the catalog.
func Catalog() []Permission {
	out := make([]Permission, len(catalog))
	copy(out, catalog)
	return out
}

func KnownPermission(p Permission) bool {
	for _, known := range catalog {
		if p == known {
			return true
		}
	}
	return false
}
