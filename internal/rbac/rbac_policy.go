package rbac

import "github.com/code-hero23/peopledesk-sub002/internal/domain"

// defaultPolicies: role -> resource -> action.
var defaultPolicies = [][]string{
	{domain.RoleAdmin, "*", "*"},

	{domain.RoleEmployee, "attendance", "self"},
	{domain.RoleEmployee, "request", "create"},
	{domain.RoleEmployee, "request", "read_own"},
	{domain.RoleEmployee, "worklog", "write"},
	{domain.RoleEmployee, "payroll", "read_own"},
	{domain.RoleEmployee, "settings", "read"},
	{domain.RoleEmployee, "wfh", "create"},

	{domain.RoleBusinessHead, "attendance", "self"},
	{domain.RoleBusinessHead, "request", "create"},
	{domain.RoleBusinessHead, "request", "read_own"},
	{domain.RoleBusinessHead, "request", "decide"},
	{domain.RoleBusinessHead, "worklog", "write"},
	{domain.RoleBusinessHead, "worklog", "read_all"},
	{domain.RoleBusinessHead, "user", "read"},
	{domain.RoleBusinessHead, "payroll", "read_own"},
	{domain.RoleBusinessHead, "payroll", "export"},
	{domain.RoleBusinessHead, "settings", "read"},
	{domain.RoleBusinessHead, "analytics", "read"},
	{domain.RoleBusinessHead, "export", "read"},
	{domain.RoleBusinessHead, "wfh", "create"},
	{domain.RoleBusinessHead, "wfh", "decide"},

	{domain.RoleHR, "attendance", "self"},
	{domain.RoleHR, "attendance", "read_all"},
	{domain.RoleHR, "request", "create"},
	{domain.RoleHR, "request", "read_own"},
	{domain.RoleHR, "request", "decide"},
	{domain.RoleHR, "request", "read_all"},
	{domain.RoleHR, "request", "export"},
	{domain.RoleHR, "worklog", "write"},
	{domain.RoleHR, "worklog", "read_all"},
	{domain.RoleHR, "user", "read"},
	{domain.RoleHR, "user", "create"},
	{domain.RoleHR, "user", "update"},
	{domain.RoleHR, "payroll_profile", "update"},
	{domain.RoleHR, "payroll", "read_own"},
	{domain.RoleHR, "payroll", "read_all"},
	{domain.RoleHR, "payroll", "import"},
	{domain.RoleHR, "payroll", "export"},
	{domain.RoleHR, "settings", "read"},
	{domain.RoleHR, "settings", "update"},
	{domain.RoleHR, "analytics", "read"},
	{domain.RoleHR, "export", "read"},
	{domain.RoleHR, "wfh", "create"},
	{domain.RoleHR, "wfh", "decide"},
}

// defaultGroupings: role pertama mewarisi semua hak role kedua.
var defaultGroupings = [][]string{
	{domain.RoleAEManager, domain.RoleBusinessHead},
}
