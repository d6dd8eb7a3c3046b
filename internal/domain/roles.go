package domain

const (
	RoleEmployee     = "EMPLOYEE"
	RoleAdmin        = "ADMIN"
	RoleBusinessHead = "BUSINESS_HEAD"
	RoleHR           = "HR"
	RoleAEManager    = "AE_MANAGER"
)

var Roles = []string{RoleEmployee, RoleAdmin, RoleBusinessHead, RoleHR, RoleAEManager}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsBusinessHead reports whether the role may sit on the business-head track.
func IsBusinessHead(role string) bool {
	return role == RoleBusinessHead || role == RoleAEManager
}

const (
	UserStatusActive  = "ACTIVE"
	UserStatusBlocked = "BLOCKED"
)
