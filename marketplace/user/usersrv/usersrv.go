package usersrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/fsx"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// UserService provides identity resolution and account moderation
type UserService struct {
	userRepo    user.Repository
	tokenSvc    auth.TokenService
	passwordSvc auth.PasswordService
	fileSystem  fsx.FileSystem
}

// NewUserService creates a new instance of the user service
func NewUserService(
	userRepo user.Repository,
	tokenSvc auth.TokenService,
	passwordSvc auth.PasswordService,
	fileSystem fsx.FileSystem,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		tokenSvc:    tokenSvc,
		passwordSvc: passwordSvc,
		fileSystem:  fileSystem,
	}
}

// Resolve maps an external identity to a local user record, creating one on
// first sight. HR and company accounts start inactive and await admin
// approval; candidates are usable immediately.
func (s *UserService) Resolve(ctx context.Context, req user.ResolveUserRequest) (*user.User, string, error) {
	if req.ExternalUID.IsEmpty() || req.Email.IsEmpty() {
		return nil, "", user.ErrInvalidRequest().WithDetail("missing", "uid and email are required")
	}

	existing, err := s.userRepo.GetByExternalUID(ctx, req.ExternalUID)
	if err == nil {
		token, tokenErr := s.tokenSvc.GenerateAccessToken(existing.ID, existing.ExternalUID, existing.Email, existing.Role)
		if tokenErr != nil {
			return nil, "", tokenErr
		}
		return existing, token, nil
	}

	if e := errx.GetError(err); e == nil || !e.IsType(errx.TypeNotFound) {
		return nil, "", errx.Wrap(err, "failed to resolve user", errx.TypeInternal)
	}

	role := req.Role
	if role == "" {
		role = auth.RoleCandidate
	}
	if !role.IsValid() {
		return nil, "", user.ErrInvalidRole().WithDetail("role", req.Role)
	}

	now := time.Now()
	newUser := &user.User{
		ID:          kernel.NewUserID(uuid.NewString()),
		ExternalUID: req.ExternalUID,
		Email:       kernel.NewEmail(req.Email.String()),
		DisplayName: req.DisplayName,
		Role:        role,
		Status:      user.DefaultStatus(role),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, "", err
	}

	token, err := s.tokenSvc.GenerateAccessToken(newUser.ID, newUser.ExternalUID, newUser.Email, newUser.Role)
	if err != nil {
		return nil, "", err
	}

	return newUser, token, nil
}

// Login authenticates a password-holding account and issues a token
func (s *UserService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if req.Email.IsEmpty() || req.Password == "" {
		return nil, user.ErrInvalidRequest().WithDetail("missing", "email and password are required")
	}

	u, err := s.userRepo.GetByEmail(ctx, kernel.NewEmail(req.Email.String()))
	if err != nil {
		return nil, auth.ErrInvalidLogin()
	}

	if u.PasswordHash == nil || !s.passwordSvc.Verify(*u.PasswordHash, req.Password) {
		return nil, auth.ErrInvalidLogin()
	}

	token, err := s.tokenSvc.GenerateAccessToken(u.ID, u.ExternalUID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{Token: token, User: user.ToResponse(u)}, nil
}

// GetByUID retrieves the caller's own record
func (s *UserService) GetByUID(ctx context.Context, uid kernel.ExternalUID) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByExternalUID(ctx, uid)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("uid", uid.String())
	}
	return user.ToResponse(u), nil
}

// GetByEmail retrieves a user record by email
func (s *UserService) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("email", email.String())
	}
	return u, nil
}

// UpdateOwnProfile overwrites the caller's role-specific profile sub-document.
// There are no merge semantics; the full sub-document must be sent.
func (s *UserService) UpdateOwnProfile(ctx context.Context, uid kernel.ExternalUID, req user.UpdateProfileRequest) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByExternalUID(ctx, uid)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("uid", uid.String())
	}

	if req.DisplayName != nil {
		u.DisplayName = *req.DisplayName
	}

	if err := applyProfile(u, req); err != nil {
		return nil, err
	}

	u.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, u.ID, u); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	return user.ToResponse(u), nil
}

// UploadResume stores a candidate's resume file and records its URL
func (s *UserService) UploadResume(ctx context.Context, uid kernel.ExternalUID, fileName string, data []byte) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByExternalUID(ctx, uid)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("uid", uid.String())
	}

	if u.Role != auth.RoleCandidate {
		return nil, user.ErrNotCandidate().WithDetail("role", u.Role)
	}

	path := s.fileSystem.Join("resumes", u.ID.String(), fileName)
	if err := s.fileSystem.WriteFile(ctx, path, data); err != nil {
		return nil, errx.Wrap(err, "failed to store resume", errx.TypeInternal)
	}

	if u.CandidateProfile == nil {
		u.CandidateProfile = &user.CandidateProfile{}
	}
	u.CandidateProfile.ResumeURL = kernel.ResumeURL(s.fileSystem.PublicURL(path))
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, u.ID, u); err != nil {
		// Best effort cleanup so the bucket does not accumulate orphans
		s.fileSystem.DeleteFile(context.Background(), path)
		return nil, errx.Wrap(err, "failed to record resume url", errx.TypeInternal)
	}

	return user.ToResponse(u), nil
}

// ============================================================================
// Admin Moderation
// ============================================================================

// ListPendingAccounts returns a page of hr/company accounts filtered by
// status, plus global role counts computed independently of the filter so the
// stats cards always reflect the whole population.
func (s *UserService) ListPendingAccounts(ctx context.Context, req user.ListAccountsRequest) (*user.AccountQueueResponse, error) {
	if req.Role != auth.RoleHR && req.Role != auth.RoleCompany {
		return nil, user.ErrInvalidRole().WithDetail("role", req.Role)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, user.ErrInvalidStatus().WithDetail("status", *req.Status)
	}

	pagination := req.Pagination.Normalized()

	accounts, err := s.userRepo.ListByRole(ctx, req.Role, req.Status, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list accounts", errx.TypeInternal)
	}

	stats, err := s.userRepo.CountByRole(ctx, req.Role)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count accounts", errx.TypeInternal)
	}

	responses := make([]user.UserResponse, 0, len(accounts.Items))
	for i := range accounts.Items {
		responses = append(responses, *user.ToResponse(&accounts.Items[i]))
	}

	return &user.AccountQueueResponse{
		Accounts: &kernel.Paginated[user.UserResponse]{
			Items: responses,
			Page:  accounts.Page,
			Empty: accounts.Empty,
		},
		Stats: stats,
	}, nil
}

// FlipAccountStatus sets an account's status. This is an unguarded admin
// override: any status may go to any other.
func (s *UserService) FlipAccountStatus(ctx context.Context, id kernel.UserID, status user.UserStatus) error {
	if !status.IsValid() {
		return user.ErrInvalidStatus().WithDetail("status", status)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	return nil
}

// EditPendingProfile overwrites an account's role-specific profile wholesale
// on behalf of an admin.
func (s *UserService) EditPendingProfile(ctx context.Context, id kernel.UserID, req user.UpdateProfileRequest) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	if req.CandidateProfile == nil && req.HRProfile == nil && req.CompanyProfile == nil {
		return nil, user.ErrMissingProfile()
	}

	if err := applyProfile(u, req); err != nil {
		return nil, err
	}

	u.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, u.ID, u); err != nil {
		return nil, errx.Wrap(err, "failed to edit profile", errx.TypeInternal)
	}

	return user.ToResponse(u), nil
}

// applyProfile assigns the submitted sub-document matching the account role
// and rejects mismatched ones.
func applyProfile(u *user.User, req user.UpdateProfileRequest) error {
	switch {
	case req.CandidateProfile != nil:
		if u.Role != auth.RoleCandidate {
			return user.ErrProfileRoleMismatch().WithDetail("role", u.Role).WithDetail("profile", "candidate")
		}
		u.CandidateProfile = req.CandidateProfile
	case req.HRProfile != nil:
		if u.Role != auth.RoleHR {
			return user.ErrProfileRoleMismatch().WithDetail("role", u.Role).WithDetail("profile", "hr")
		}
		u.HRProfile = req.HRProfile
	case req.CompanyProfile != nil:
		if u.Role != auth.RoleCompany {
			return user.ErrProfileRoleMismatch().WithDetail("role", u.Role).WithDetail("profile", "company")
		}
		u.CompanyProfile = req.CompanyProfile
	}
	return nil
}

// SeedAdmin ensures an admin account with password login exists; used by the
// container at startup when ADMIN_EMAIL/ADMIN_PASSWORD are set.
func (s *UserService) SeedAdmin(ctx context.Context, email kernel.Email, password string) error {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	admin := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		ExternalUID:  kernel.ExternalUID("admin:" + email.String()),
		Email:        email,
		DisplayName:  "Administrator",
		Role:         auth.RoleAdmin,
		Status:       user.UserStatusActive,
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.userRepo.Create(ctx, admin)
}
