package applicationsrv

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicationRepo struct {
	mu         sync.Mutex
	apps       map[kernel.ApplicationID]*application.Application
	shortlists map[kernel.ApplicationID]kernel.Email
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:       make(map[kernel.ApplicationID]*application.Application),
		shortlists: make(map[kernel.ApplicationID]kernel.Email),
	}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *application.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.apps {
		if existing.JobID == app.JobID && existing.CandidateUID == app.CandidateUID {
			return application.ErrApplicationAlreadyExists()
		}
	}
	cp := *app
	f.apps[app.ID] = &cp
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id kernel.ApplicationID) (*application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationRepo) List(_ context.Context, req application.ListApplicationsRequest) ([]application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []application.Application
	for _, app := range f.apps {
		if !req.CandidateUID.IsEmpty() && app.CandidateUID != req.CandidateUID {
			continue
		}
		if !req.JobID.IsEmpty() && app.JobID != req.JobID {
			continue
		}
		out = append(out, *app)
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByCompany(_ context.Context, companyEmail kernel.Email) ([]application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []application.Application
	for _, app := range f.apps {
		if app.CompanyEmail == companyEmail {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateUID kernel.ExternalUID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []application.Application
	for _, app := range f.apps {
		if app.CandidateUID == candidateUID {
			matched = append(matched, *app)
		}
	}
	return kernel.NewPaginated(matched, pagination, len(matched)), nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id kernel.ApplicationID, status application.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return application.ErrApplicationNotFound()
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationRepo) DeleteCascade(_ context.Context, id kernel.ApplicationID, _ kernel.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.apps[id]; !ok {
		return application.ErrApplicationNotFound()
	}
	delete(f.apps, id)
	delete(f.shortlists, id)
	return nil
}

func (f *fakeApplicationRepo) CountByJob(_ context.Context, jobIDs []kernel.JobID) (map[kernel.JobID]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[kernel.JobID]int64)
	for _, app := range f.apps {
		counts[app.JobID]++
	}
	out := make(map[kernel.JobID]int64)
	for _, id := range jobIDs {
		out[id] = counts[id]
	}
	return out, nil
}

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

func (f *fakeJobRepo) List(_ context.Context, _ job.ListJobsRequest) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, _ kernel.Email, _ kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}

func (f *fakeJobRepo) CountByCompany(_ context.Context, _ kernel.Email) (int64, error) {
	return int64(len(f.jobs)), nil
}

func (f *fakeJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.jobs[id]
	return ok, nil
}

func seedJob(t *testing.T, repo *fakeJobRepo, id string, company string, deadline time.Time) *job.Job {
	t.Helper()
	j := &job.Job{
		ID:             kernel.JobID(id),
		Title:          "Backend Engineer",
		Sector:         "Engineering",
		Type:           job.JobTypeFullTime,
		SalaryMin:      50000,
		SalaryMax:      90000,
		Deadline:       deadline,
		CreatedByEmail: kernel.Email(company),
	}
	require.NoError(t, repo.Create(context.Background(), j))
	return j
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo())

	_, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID: "job-1",
	})

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeValidation))
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(appRepo, jobRepo)

	req := application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	}

	first, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, application.ApplicationStatusSubmitted, first.Status)

	_, err = svc.Submit(context.Background(), req)
	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeConflict))

	apps, err := svc.List(context.Background(), application.ListApplicationsRequest{
		CandidateUID: "uid-1",
		JobID:        "job-1",
	})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestSubmitRejectsPassedDeadline(t *testing.T) {
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(-time.Hour))
	svc := NewApplicationService(newFakeApplicationRepo(), jobRepo)

	_, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	})

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthorization))
}

func TestSubmitSnapshotsJobFields(t *testing.T) {
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(newFakeApplicationRepo(), jobRepo)

	app, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	})

	require.NoError(t, err)
	assert.Equal(t, kernel.JobTitle("Backend Engineer"), app.JobTitle)
	assert.Equal(t, kernel.Email("acme@corp.com"), app.CompanyEmail)
	assert.Equal(t, 50000, app.SalaryMin)
	assert.Equal(t, 90000, app.SalaryMax)
	assert.False(t, app.AppliedAt.IsZero())
}

func TestListMineReturnsOnlyCallersApplications(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	seedJob(t, jobRepo, "job-2", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(appRepo, jobRepo)

	for _, sub := range []struct {
		jobID, uid string
	}{
		{"job-1", "uid-1"},
		{"job-2", "uid-1"},
		{"job-1", "uid-2"},
	} {
		_, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
			JobID:          kernel.JobID(sub.jobID),
			CandidateUID:   kernel.ExternalUID(sub.uid),
			CandidateEmail: "someone@mail.com",
		})
		require.NoError(t, err)
	}

	page, err := svc.ListMine(context.Background(), "uid-1", kernel.PaginationOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page.Total)
}

func TestDeleteMissingApplicationReturnsNotFound(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo())

	err := svc.Delete(context.Background(), "gone", "acme@corp.com")

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeNotFound))
}

func TestDeleteByNonOwnerIsForbidden(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(appRepo, jobRepo)

	app, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), app.ID, "rival@corp.com")
	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthorization))

	// record is intact
	_, err = svc.GetByID(context.Background(), app.ID)
	assert.NoError(t, err)
}

func TestDeleteWithMissingJobIsForbidden(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(appRepo, jobRepo)

	app, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	})
	require.NoError(t, err)

	jobRepo.mu.Lock()
	delete(jobRepo.jobs, "job-1")
	jobRepo.mu.Unlock()

	err = svc.Delete(context.Background(), app.ID, "acme@corp.com")
	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeAuthorization))
}

func TestDeleteCascadesShortlist(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(appRepo, jobRepo)

	app, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	})
	require.NoError(t, err)

	appRepo.mu.Lock()
	appRepo.shortlists[app.ID] = "acme@corp.com"
	appRepo.mu.Unlock()

	require.NoError(t, svc.Delete(context.Background(), app.ID, "acme@corp.com"))

	appRepo.mu.Lock()
	defer appRepo.mu.Unlock()
	assert.Empty(t, appRepo.apps)
	assert.Empty(t, appRepo.shortlists)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	seedJob(t, jobRepo, "job-1", "acme@corp.com", time.Now().Add(24*time.Hour))
	svc := NewApplicationService(appRepo, jobRepo)

	app, err := svc.Submit(context.Background(), application.SubmitApplicationRequest{
		JobID:          "job-1",
		CandidateUID:   "uid-1",
		CandidateEmail: "alice@mail.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), app.ID, "acme@corp.com", application.ApplicationStatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, application.ApplicationStatusShortlisted, updated.Status)

	// submitted is behind shortlisted; going back is rejected
	_, err = svc.UpdateStatus(context.Background(), app.ID, "acme@corp.com", application.ApplicationStatusSubmitted)
	require.Error(t, err)

	// unknown value is rejected at the boundary
	_, err = svc.UpdateStatus(context.Background(), app.ID, "acme@corp.com", "promoted")
	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeValidation))
}
