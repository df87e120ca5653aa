package user

import (
	"time"

	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// ResolveUserRequest - DTO for resolving an external identity to a local user.
// Sent on first login after the identity provider authenticates the caller.
type ResolveUserRequest struct {
	ExternalUID kernel.ExternalUID `json:"uid" validate:"required"`
	Email       kernel.Email       `json:"email" validate:"required"`
	DisplayName kernel.DisplayName `json:"display_name,omitempty"`
	Role        auth.Role          `json:"role,omitempty"`
}

// LoginRequest - DTO for password login (admin/hr/company accounts)
type LoginRequest struct {
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the resolved user
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UpdateProfileRequest - wholesale overwrite of the role-specific profile
// sub-document. Callers must resend the full sub-document; there is no merge.
type UpdateProfileRequest struct {
	DisplayName      *kernel.DisplayName `json:"display_name,omitempty"`
	CandidateProfile *CandidateProfile   `json:"candidate_profile,omitempty"`
	HRProfile        *HRProfile          `json:"hr_profile,omitempty"`
	CompanyProfile   *CompanyProfile     `json:"company_profile,omitempty"`
}

// FlipStatusRequest - DTO for the admin status override
type FlipStatusRequest struct {
	Status UserStatus `json:"status" validate:"required"`
}

// ListAccountsRequest - DTO for the admin review queues
type ListAccountsRequest struct {
	Role       auth.Role                `json:"role" validate:"required"`
	Status     *UserStatus              `json:"status,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// RoleStats are global counts for a role, independent of list filters
type RoleStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// AccountQueueResponse is a page of accounts plus the global stats cards
type AccountQueueResponse struct {
	Accounts *kernel.Paginated[UserResponse] `json:"accounts"`
	Stats    RoleStats                       `json:"stats"`
}

// UserResponse - DTO for returning user data
type UserResponse struct {
	ID               kernel.UserID      `json:"id"`
	ExternalUID      kernel.ExternalUID `json:"external_uid"`
	Email            kernel.Email       `json:"email"`
	DisplayName      kernel.DisplayName `json:"display_name"`
	Role             auth.Role          `json:"role"`
	Status           UserStatus         `json:"status"`
	CandidateProfile *CandidateProfile  `json:"candidate_profile,omitempty"`
	HRProfile        *HRProfile         `json:"hr_profile,omitempty"`
	CompanyProfile   *CompanyProfile    `json:"company_profile,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// ToResponse converts a User entity to its response DTO
func ToResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		ExternalUID:      u.ExternalUID,
		Email:            u.Email,
		DisplayName:      u.DisplayName,
		Role:             u.Role,
		Status:           u.Status,
		CandidateProfile: u.CandidateProfile,
		HRProfile:        u.HRProfile,
		CompanyProfile:   u.CompanyProfile,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
