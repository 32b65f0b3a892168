package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUserFields(t *testing.T) {
	valid := User{Name: "Ann", Email: "ann@x.com", Role: "Viewer", Status: StatusActive}
	require.NoError(t, ValidateUserFields(valid))

	assert.ErrorIs(t, ValidateUserFields(User{Name: "", Email: "ann@x.com"}), ErrMissingUserFields)
	assert.ErrorIs(t, ValidateUserFields(User{Name: "Ann", Email: ""}), ErrMissingUserFields)
	assert.ErrorIs(t, ValidateUserFields(User{Name: "   ", Email: "ann@x.com"}), ErrMissingUserFields)
}

func TestValidateUserFields_EmailGrammar(t *testing.T) {
	accept := []string{
		"ann@x.com",
		"first.last@sub.example.co",
		"a@b.c.d",
	}
	for _, email := range accept {
		assert.NoError(t, ValidateUserFields(User{Name: "Ann", Email: email}), "email %q", email)
	}

	reject := []string{
		"plain",
		"a@b",
		"@x.com",
		"a@.com",
		"a@b.",
		"a@@b.com",
		"two@parts@x.com",
		"sp ace@x.com",
		"tab\t@x.com",
	}
	for _, email := range reject {
		assert.ErrorIs(t, ValidateUserFields(User{Name: "Ann", Email: email}), ErrInvalidEmail, "email %q", email)
	}
}

func TestValidateUserUniqueness(t *testing.T) {
	existing := []User{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bob", Email: "bob@x.com"},
	}

	// Same pair as another record.
	err := ValidateUserUniqueness(User{Name: "Ann", Email: "ann@x.com"}, existing, 0)
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// Same name alone or same email alone is allowed.
	assert.NoError(t, ValidateUserUniqueness(User{Name: "Ann", Email: "other@x.com"}, existing, 0))
	assert.NoError(t, ValidateUserUniqueness(User{Name: "Other", Email: "ann@x.com"}, existing, 0))

	// The record under edit does not collide with itself.
	assert.NoError(t, ValidateUserUniqueness(User{Name: "Ann", Email: "ann@x.com"}, existing, 1))
	assert.ErrorIs(t, ValidateUserUniqueness(User{Name: "Ann", Email: "ann@x.com"}, existing, 2), ErrDuplicateUser)
}

func TestValidateRoleFields(t *testing.T) {
	require.NoError(t, ValidateRoleFields(Role{Name: "Auditor", Permissions: []Permission{PermViewUsers}}))

	assert.ErrorIs(t, ValidateRoleFields(Role{Name: "", Permissions: []Permission{PermViewUsers}}), ErrMissingRoleName)
	assert.ErrorIs(t, ValidateRoleFields(Role{Name: "Auditor"}), ErrEmptyPermissions)
	assert.ErrorIs(t, ValidateRoleFields(Role{Name: "Auditor", Permissions: []Permission{"launch_rockets"}}), ErrUnknownPermission)
}

func TestValidateRoleUniqueness(t *testing.T) {
	existing := []Role{
		{ID: 1, Name: "Admin", Permissions: []Permission{PermManageRoles}},
		{ID: 2, Name: "Viewer", Permissions: []Permission{PermViewUsers}},
	}

	assert.ErrorIs(t, ValidateRoleUniqueness(Role{Name: "Admin"}, existing, 0), ErrDuplicateRole)
	assert.NoError(t, ValidateRoleUniqueness(Role{Name: "Admin"}, existing, 1))
	// Case-sensitive, exact match.
	assert.NoError(t, ValidateRoleUniqueness(Role{Name: "admin"}, existing, 0))
}

func TestCatalogIsDetached(t *testing.T) {
	first := Catalog()
	first[0] = "mutated"
	assert.NotContains(t, Catalog(), Permission("mutated"))
	assert.True(t, KnownPermission(PermCreateUser))
	assert.False(t, KnownPermission("mutated"))
}
