package user

import (
	"time"

	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// UserStatus represents the moderation status of an account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// IsValid reports whether the status is one of the closed set
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// CandidateProfile is the role-specific sub-document for candidates
type CandidateProfile struct {
	ResumeURL kernel.ResumeURL `json:"resume_url,omitempty"`
	Phone     kernel.Phone     `json:"phone,omitempty"`
	Location  string           `json:"location,omitempty"`
	Bio       string           `json:"bio,omitempty"`
}

// HRProfile is the role-specific sub-document for HR accounts
type HRProfile struct {
	CompanyName string       `json:"company_name"`
	Designation string       `json:"designation,omitempty"`
	Phone       kernel.Phone `json:"phone,omitempty"`
	LinkedinURL string       `json:"linkedin_url,omitempty"`
}

// CompanyProfile is the role-specific sub-document for company accounts
type CompanyProfile struct {
	CompanyName  string       `json:"company_name"`
	Website      string       `json:"website,omitempty"`
	OwnerName    string       `json:"owner_name,omitempty"`
	OwnerContact kernel.Phone `json:"owner_contact,omitempty"`
}

type User struct {
	ID               kernel.UserID      `db:"id" json:"id"`
	ExternalUID      kernel.ExternalUID `db:"external_uid" json:"external_uid"`
	Email            kernel.Email       `db:"email" json:"email"`
	DisplayName      kernel.DisplayName `db:"display_name" json:"display_name"`
	Role             auth.Role          `db:"role" json:"role"`
	Status           UserStatus         `db:"status" json:"status"`
	PasswordHash     *string            `db:"password_hash" json:"-"`
	CandidateProfile *CandidateProfile  `db:"candidate_profile" json:"candidate_profile,omitempty"`
	HRProfile        *HRProfile         `db:"hr_profile" json:"hr_profile,omitempty"`
	CompanyProfile   *CompanyProfile    `db:"company_profile" json:"company_profile,omitempty"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the account has been approved
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// CanPostJobs checks whether this account may create job postings.
// Only active company accounts qualify.
func (u *User) CanPostJobs() bool {
	return u.Role == auth.RoleCompany && u.IsActive()
}

// CanScheduleInterviews checks whether this account may promote slot
// applications into scheduled interviews.
func (u *User) CanScheduleInterviews() bool {
	return (u.Role == auth.RoleHR || u.Role == auth.RoleCompany) && u.IsActive()
}

// Activate flips the account to active
func (u *User) Activate() {
	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
}

// Deactivate flips the account to inactive
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
	u.UpdatedAt = time.Now()
}

// DefaultStatus returns the status a freshly registered account starts in.
// HR and company accounts await admin approval; candidates are usable at once.
func DefaultStatus(role auth.Role) UserStatus {
	if role.RequiresApproval() {
		return UserStatusInactive
	}
	return UserStatusActive
}
