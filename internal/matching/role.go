package matching

import "strings"

// InferRole classifies a job title. Checks run in order backend, frontend,
// full; the first hit wins and anything else is backend.
func InferRole(jobTitle string) Role {
	title := strings.ToLower(jobTitle)
	switch {
	case strings.Contains(title, "backend"):
		return RoleBackend
	case strings.Contains(title, "frontend"):
		return RoleFrontend
	case strings.Contains(title, "full"):
		return RoleFullstack
	default:
		return RoleBackend
	}
}
