package rbac

const (
	RoleAdmin  = "admin"
	RoleHR     = "hr"
	RoleViewer = "viewer"
)

const (
	ResourceEmployee  = "employee"
	ResourceFinancial = "financial"
	ResourceCountry   = "country"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// DefaultPolicies grants hr the full employee and financial surface plus the
// country catalog, and viewer read access to employees and countries. admin
// inherits hr.
func DefaultPolicies() (policies [][]string, groupings [][]string) {
	for _, resource := range []string{ResourceEmployee, ResourceFinancial} {
		for _, action := range []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			policies = append(policies, []string{RoleHR, resource, action})
		}
	}
	policies = append(policies,
		[]string{RoleHR, ResourceCountry, ActionRead},
		[]string{RoleHR, ResourceCountry, ActionCreate},
		[]string{RoleViewer, ResourceEmployee, ActionRead},
		[]string{RoleViewer, ResourceCountry, ActionRead},
	)
	groupings = append(groupings, []string{RoleAdmin, RoleHR})
	return policies, groupings
}
