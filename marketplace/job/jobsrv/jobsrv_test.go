package jobsrv

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[kernel.JobID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) List(_ context.Context, req job.ListJobsRequest) (*kernel.Paginated[job.Job], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []job.Job
	for _, j := range f.jobs {
		if req.Sector != "" && j.Sector != req.Sector {
			continue
		}
		if req.OpenOnly && j.DeadlinePassed(time.Now()) {
			continue
		}
		matched = append(matched, *j)
	}
	return kernel.NewPaginated(matched, req.Pagination, len(matched)), nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, email kernel.Email, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []job.Job
	for _, j := range f.jobs {
		if j.IsOwnedBy(email) {
			matched = append(matched, *j)
		}
	}
	return kernel.NewPaginated(matched, pagination, len(matched)), nil
}

func (f *fakeJobRepo) CountByCompany(_ context.Context, email kernel.Email) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, j := range f.jobs {
		if j.IsOwnedBy(email) {
			n++
		}
	}
	return n, nil
}

func (f *fakeJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.jobs[id]
	return ok, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[kernel.Email]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.Email]*user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ kernel.UserID, _ *user.User) error { return nil }

func (f *fakeUserRepo) GetByID(_ context.Context, _ kernel.UserID) (*user.User, error) {
	return nil, user.ErrUserNotFound()
}

func (f *fakeUserRepo) GetByExternalUID(_ context.Context, _ kernel.ExternalUID) (*user.User, error) {
	return nil, user.ErrUserNotFound()
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, _ kernel.UserID, _ user.UserStatus) error {
	return nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, _ auth.Role, _ *user.UserStatus, _ kernel.PaginationOptions) (*kernel.Paginated[user.User], error) {
	return nil, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, _ auth.Role) (user.RoleStats, error) {
	return user.RoleStats{}, nil
}

func setup(t *testing.T) (*JobService, *fakeJobRepo, *fakeUserRepo) {
	t.Helper()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo()
	return NewJobService(jobRepo, userRepo), jobRepo, userRepo
}

func seedAccount(t *testing.T, repo *fakeUserRepo, email string, role auth.Role, status user.UserStatus) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &user.User{
		ID:          "u-1",
		ExternalUID: kernel.ExternalUID("uid-" + email),
		Email:       kernel.Email(email),
		Role:        role,
		Status:      status,
	}))
}

func validRequest() job.CreateJobRequest {
	return job.CreateJobRequest{
		Title:     "Backend Engineer",
		Sector:    "Technology",
		Type:      job.JobTypeFullTime,
		Location:  "Remote",
		Vacancy:   2,
		SalaryMin: 60000,
		SalaryMax: 90000,
		Deadline:  time.Now().Add(14 * 24 * time.Hour),
	}
}

func TestCreateJobByActiveCompany(t *testing.T) {
	svc, repo, userRepo := setup(t)
	seedAccount(t, userRepo, "acme@corp.com", auth.RoleCompany, user.UserStatusActive)

	created, err := svc.CreateJob(context.Background(), validRequest(), "acme@corp.com")

	require.NoError(t, err)
	assert.False(t, created.ID.IsEmpty())
	assert.Equal(t, kernel.Email("acme@corp.com"), created.CreatedByEmail)
	assert.False(t, created.PostedAt.IsZero())

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.jobs, 1)
}

func TestCreateJobRejectsInactiveCompany(t *testing.T) {
	svc, repo, userRepo := setup(t)
	seedAccount(t, userRepo, "acme@corp.com", auth.RoleCompany, user.UserStatusInactive)

	_, err := svc.CreateJob(context.Background(), validRequest(), "acme@corp.com")

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthorization))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Empty(t, repo.jobs)
}

func TestCreateJobRejectsCandidates(t *testing.T) {
	svc, _, userRepo := setup(t)
	seedAccount(t, userRepo, "alice@mail.com", auth.RoleCandidate, user.UserStatusActive)

	_, err := svc.CreateJob(context.Background(), validRequest(), "alice@mail.com")

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthorization))
}

func TestCreateJobValidatesRequest(t *testing.T) {
	svc, _, userRepo := setup(t)
	seedAccount(t, userRepo, "acme@corp.com", auth.RoleCompany, user.UserStatusActive)

	missing := validRequest()
	missing.Title = ""
	_, err := svc.CreateJob(context.Background(), missing, "acme@corp.com")
	require.Error(t, err)

	badType := validRequest()
	badType.Type = "gig"
	_, err = svc.CreateJob(context.Background(), badType, "acme@corp.com")
	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeValidation))
}

func TestGetJobByIDNotFound(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.GetJobByID(context.Background(), "missing")

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeNotFound))
}

func TestListJobsFiltersExpiredWhenOpenOnly(t *testing.T) {
	svc, repo, userRepo := setup(t)
	seedAccount(t, userRepo, "acme@corp.com", auth.RoleCompany, user.UserStatusActive)

	open := validRequest()
	_, err := svc.CreateJob(context.Background(), open, "acme@corp.com")
	require.NoError(t, err)

	expired := validRequest()
	expired.Title = "Legacy Role"
	expired.Deadline = time.Now().Add(-time.Hour)
	_, err = svc.CreateJob(context.Background(), expired, "acme@corp.com")
	require.NoError(t, err)

	resp, err := svc.ListJobs(context.Background(), job.ListJobsRequest{OpenOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, kernel.JobTitle("Backend Engineer"), resp.Items[0].Title)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	// expired postings are hidden from the open listing, never deleted
	assert.Len(t, repo.jobs, 2)
}
