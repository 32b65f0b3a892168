package domain

import "strings"

// ValidateUserFields checks a candidate user's own fields. It does not touch
// the store; uniqueness is a separate check run against live state.
func ValidateUserFields(user User) error {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" {
		return ErrMissingUserFields
	}
	if !validEmail(user.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateUserUniqueness rejects a candidate whose (name, email) pair is
// already taken by another user. excludeID is the id of the record being
// updated so it does not collide with itself; pass 0 on create.
func ValidateUserUniqueness(user User, existing []User, excludeID int64) error {
	for _, other := range existing {
		if other.ID != excludeID && other.Name == user.Name && other.Email == user.Email {
			return ErrDuplicateUser
		}
	}
	return nil
}

func ValidateRoleFields(role Role) error {
	if strings.TrimSpace(role.Name) == "" {
		return ErrMissingRoleName
	}
	if len(role.Permissions) == 0 {
		return ErrEmptyPermissions
	}
	for _, p := range role.Permissions {
		if !KnownPermission(p) {
			return ErrUnknownPermission
		}
	}
	return nil
}

func ValidateRoleUniqueness(role Role, existing []Role, excludeID int64) error {
	for _, other := range existing {
		if other.ID != excludeID && other.Name == role.Name {
			return ErrDuplicateRole
		}
	}
	return nil
}

// validEmail enforces the localpart@domain.tld grammar: exactly one '@', no
// whitespace, and a dot in the domain with characters on both sides.
func validEmail(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
