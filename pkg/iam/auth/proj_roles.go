package auth

// ============================================================================
// DOMAIN-SPECIFIC ROLES - InterviewMate marketplace
// ============================================================================

// Role is the account role carried in tokens and on user records
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleHR        Role = "hr"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

// IsValid reports whether the role is one of the closed set
func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleHR, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// RequiresApproval reports whether accounts with this role start inactive
// and need an admin status flip before they can act.
func (r Role) RequiresApproval() bool {
	return r == RoleHR || r == RoleCompany
}

// RoleDescriptions provides descriptions for account roles
var RoleDescriptions = map[Role]string{
	RoleCandidate: "Applies to jobs and books interview slots",
	RoleHR:        "Schedules and conducts interviews for a company",
	RoleCompany:   "Owns job postings and reviews applicants",
	RoleAdmin:     "Moderates accounts and payments",
}
