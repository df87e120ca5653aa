package usersrv

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/fsx"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[kernel.UserID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.UserID]*user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.ExternalUID == u.ExternalUID || existing.Email == u.Email {
			return user.ErrUserAlreadyExists()
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, id kernel.UserID, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound()
	}
	cp := *u
	f.users[id] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByExternalUID(_ context.Context, uid kernel.ExternalUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ExternalUID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id kernel.UserID, status user.UserStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound()
	}
	u.Status = status
	return nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role auth.Role, status *user.UserStatus, pagination kernel.PaginationOptions) (*kernel.Paginated[user.User], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []user.User
	for _, u := range f.users {
		if u.Role != role {
			continue
		}
		if status != nil && u.Status != *status {
			continue
		}
		matched = append(matched, *u)
	}
	return kernel.NewPaginated(matched, pagination, len(matched)), nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role auth.Role) (user.RoleStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats user.RoleStats
	for _, u := range f.users {
		if u.Role != role {
			continue
		}
		stats.Total++
		if u.Status == user.UserStatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(userID kernel.UserID, uid kernel.ExternalUID, _ kernel.Email, _ auth.Role) (string, error) {
	return fmt.Sprintf("token-%s-%s", userID, uid), nil
}

func (fakeTokenService) ValidateAccessToken(_ string) (*auth.TokenClaims, error) {
	return nil, auth.ErrInvalidToken()
}

type fakePasswordService struct{}

func (fakePasswordService) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakePasswordService) Verify(hash, plain string) bool { return hash == "hashed:"+plain }

type fakeFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: make(map[string][]byte)}
}

func (f *fakeFileSystem) WriteFile(_ context.Context, path string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = data
	return nil
}

func (f *fakeFileSystem) ReadFileStream(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, nil
}

func (f *fakeFileSystem) DeleteFile(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	return nil
}

func (f *fakeFileSystem) Join(segments ...string) string { return fsx.JoinPath(segments...) }

func (f *fakeFileSystem) PublicURL(path string) string { return "https://files.test/" + path }

func newService() (*UserService, *fakeUserRepo, *fakeFileSystem) {
	repo := newFakeUserRepo()
	fs := newFakeFileSystem()
	svc := NewUserService(repo, fakeTokenService{}, fakePasswordService{}, fs)
	return svc, repo, fs
}

func TestResolveCreatesCandidateActive(t *testing.T) {
	svc, _, _ := newService()

	u, token, err := svc.Resolve(context.Background(), user.ResolveUserRequest{
		ExternalUID: "uid-1",
		Email:       "Alice@Mail.com",
		DisplayName: "Alice",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, auth.RoleCandidate, u.Role)
	assert.Equal(t, user.UserStatusActive, u.Status)
	assert.Equal(t, kernel.Email("alice@mail.com"), u.Email)
}

func TestResolveCreatesCompanyInactive(t *testing.T) {
	svc, _, _ := newService()

	u, _, err := svc.Resolve(context.Background(), user.ResolveUserRequest{
		ExternalUID: "uid-2",
		Email:       "acme@corp.com",
		Role:        auth.RoleCompany,
	})

	require.NoError(t, err)
	assert.Equal(t, user.UserStatusInactive, u.Status)
}

func TestResolveIsIdempotent(t *testing.T) {
	svc, repo, _ := newService()

	req := user.ResolveUserRequest{ExternalUID: "uid-1", Email: "alice@mail.com"}

	first, _, err := svc.Resolve(context.Background(), req)
	require.NoError(t, err)

	second, token, err := svc.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.NotEmpty(t, token)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.users, 1)
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, repo, _ := newService()
	hash := "hashed:s3cret"
	require.NoError(t, repo.Create(context.Background(), &user.User{
		ID:           "admin-1",
		ExternalUID:  "admin:boss@mail.com",
		Email:        "boss@mail.com",
		Role:         auth.RoleAdmin,
		Status:       user.UserStatusActive,
		PasswordHash: &hash,
	}))

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "boss@mail.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "boss@mail.com",
		Password: "wrong",
	})
	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthentication))
}

func TestListPendingAccountsGlobalStats(t *testing.T) {
	svc, repo, _ := newService()
	seed := func(id string, status user.UserStatus) {
		require.NoError(t, repo.Create(context.Background(), &user.User{
			ID:          kernel.UserID(id),
			ExternalUID: kernel.ExternalUID("uid-" + id),
			Email:       kernel.Email(id + "@corp.com"),
			Role:        auth.RoleCompany,
			Status:      status,
		}))
	}
	seed("c1", user.UserStatusInactive)
	seed("c2", user.UserStatusInactive)
	seed("c3", user.UserStatusActive)

	inactive := user.UserStatusInactive
	resp, err := svc.ListPendingAccounts(context.Background(), user.ListAccountsRequest{
		Role:       auth.RoleCompany,
		Status:     &inactive,
		Pagination: kernel.PaginationOptions{Page: 1, PageSize: 10},
	})
	require.NoError(t, err)

	// the page is filtered, the stats are not
	assert.Len(t, resp.Accounts.Items, 2)
	assert.Equal(t, 3, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Active)
	assert.Equal(t, 2, resp.Stats.Inactive)
}

func TestListPendingAccountsRejectsOtherRoles(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.ListPendingAccounts(context.Background(), user.ListAccountsRequest{
		Role: auth.RoleCandidate,
	})

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeValidation))
}

func TestFlipAccountStatusIsUnguarded(t *testing.T) {
	svc, repo, _ := newService()
	require.NoError(t, repo.Create(context.Background(), &user.User{
		ID:          "c1",
		ExternalUID: "uid-c1",
		Email:       "c1@corp.com",
		Role:        auth.RoleCompany,
		Status:      user.UserStatusInactive,
	}))

	require.NoError(t, svc.FlipAccountStatus(context.Background(), "c1", user.UserStatusActive))
	u, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, user.UserStatusActive, u.Status)

	// and straight back again, no transition rules
	require.NoError(t, svc.FlipAccountStatus(context.Background(), "c1", user.UserStatusInactive))

	err = svc.FlipAccountStatus(context.Background(), "c1", "banned")
	require.Error(t, err)
}

func TestUpdateOwnProfileRejectsRoleMismatch(t *testing.T) {
	svc, repo, _ := newService()
	require.NoError(t, repo.Create(context.Background(), &user.User{
		ID:          "u1",
		ExternalUID: "uid-1",
		Email:       "alice@mail.com",
		Role:        auth.RoleCandidate,
		Status:      user.UserStatusActive,
	}))

	_, err := svc.UpdateOwnProfile(context.Background(), "uid-1", user.UpdateProfileRequest{
		CompanyProfile: &user.CompanyProfile{CompanyName: "Acme"},
	})

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeValidation))
}

func TestUploadResumeStoresFileAndURL(t *testing.T) {
	svc, _, fs := newService()

	u, _, err := svc.Resolve(context.Background(), user.ResolveUserRequest{
		ExternalUID: "uid-1",
		Email:       "alice@mail.com",
	})
	require.NoError(t, err)

	resp, err := svc.UploadResume(context.Background(), u.ExternalUID, "cv.pdf", []byte("%PDF"))
	require.NoError(t, err)
	require.NotNil(t, resp.CandidateProfile)
	assert.Contains(t, resp.CandidateProfile.ResumeURL.String(), "cv.pdf")

	fs.mu.Lock()
	defer fs.mu.Unlock()
	assert.Len(t, fs.files, 1)
}

func TestUploadResumeOnlyForCandidates(t *testing.T) {
	svc, repo, _ := newService()
	require.NoError(t, repo.Create(context.Background(), &user.User{
		ID:          "c1",
		ExternalUID: "uid-c1",
		Email:       "acme@corp.com",
		Role:        auth.RoleCompany,
		Status:      user.UserStatusActive,
	}))

	_, err := svc.UploadResume(context.Background(), "uid-c1", "cv.pdf", []byte("%PDF"))

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthorization))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	svc, repo, _ := newService()

	require.NoError(t, svc.SeedAdmin(context.Background(), "root@mail.com", "pw"))
	require.NoError(t, svc.SeedAdmin(context.Background(), "root@mail.com", "pw"))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.users, 1)
}
