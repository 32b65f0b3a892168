package domain

import "strings"

// StatusFilterAll passes users of every status through FilterUsers.
const StatusFilterAll = "All"

// FilterUsers returns the users whose name or email contains searchTerm
// (case-insensitive) and whose status matches statusFilter. Inputs are never
// mutated; the result preserves the input order.
func FilterUsers(users []User, searchTerm, statusFilter string) []User {
	term := strings.ToLower(searchTerm)
	out := make([]User, 0, len(users))
	for _, u := range users {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		if statusFilter != StatusFilterAll && string(u.Status) != statusFilter {
			continue
		}
		out = append(out, u)
	}
	return out
}

// FilterRoles returns the roles whose name contains searchTerm, case-insensitive.
func FilterRoles(roles []Role, searchTerm string) []Role {
	term := strings.ToLower(searchTerm)
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if term != "" && !strings.Contains(strings.ToLower(r.Name), term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CountUsersWithRole is a live count over the current user collection; it is
// recomputed on every call, never cached.
func CountUsersWithRole(users []User, roleName string) int {
	n := 0
	for _, u := range users {
		if u.Role == roleName {
			n++
		}
	}
	return n
}
