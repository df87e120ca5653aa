package user

import (
	"context"

	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, id kernel.UserID, user *User) error

	// GetByID retrieves a user by local ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByExternalUID retrieves a user by the identity provider's uid
	GetByExternalUID(ctx context.Context, uid kernel.ExternalUID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// UpdateStatus flips the moderation status and stamps updated_at
	UpdateStatus(ctx context.Context, id kernel.UserID, status UserStatus) error

	// ListByRole retrieves accounts for a role, optionally filtered by status
	ListByRole(ctx context.Context, role auth.Role, status *UserStatus, pagination kernel.PaginationOptions) (*kernel.Paginated[User], error)

	// CountByRole computes global total/active/inactive counts for a role,
	// independent of any list filter
	CountByRole(ctx context.Context, role auth.Role) (RoleStats, error)
}
