package domain

import "errors"

// Validation failures carry the exact message shown to the operator; callers
// display Envelope.Error verbatim.
var (
	ErrMissingUserFields = errors.New("Name and email are required")
	ErrInvalidEmail      = errors.New("Invalid email format")
	ErrDuplicateUser     = errors.New("A user with this name and email already exists")
	ErrMissingRoleName   = errors.New("Role name is required")
	ErrEmptyPermissions  = errors.New("Role permissions are required")
	ErrUnknownPermission = errors.New("Permission is not in the catalog")
	ErrDuplicateRole     = errors.New("Role name must be unique")
	ErrInvalidUserID     = errors.New("Invalid user ID")
	ErrInvalidRoleID     = errors.New("Invalid role ID")
	ErrRoleNotFound      = errors.New("Role not found")
)

var validationErrs = []error{
	ErrMissingUserFields,
	ErrInvalidEmail,
	ErrDuplicateUser,
	ErrMissingRoleName,
	ErrEmptyPermissions,
	ErrUnknownPermission,
	ErrDuplicateRole,
	ErrInvalidUserID,
	ErrInvalidRoleID,
	ErrRoleNotFound,
}

// IsValidationError reports whether err is a caller error whose message may be
// surfaced to the operator. Anything else is treated as unexpected and masked.
func IsValidationError(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
