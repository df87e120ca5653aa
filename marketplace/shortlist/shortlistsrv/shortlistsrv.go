package shortlistsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/marketplace/shortlist"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// ShortlistService manages saved applications and the company dashboard
type ShortlistService struct {
	shortlistRepo   shortlist.Repository
	applicationRepo application.Repository
	jobRepo         job.Repository
	userRepo        user.Repository
}

// NewShortlistService creates a new instance of the shortlist service
func NewShortlistService(
	shortlistRepo shortlist.Repository,
	applicationRepo application.Repository,
	jobRepo job.Repository,
	userRepo user.Repository,
) *ShortlistService {
	return &ShortlistService{
		shortlistRepo:   shortlistRepo,
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// Add saves an application to the caller's shortlist. Only company accounts
// may shortlist; saving the same application twice is a conflict.
func (s *ShortlistService) Add(ctx context.Context, companyEmail kernel.Email, req shortlist.AddToShortlistRequest) (*shortlist.Shortlist, error) {
	if req.ApplicationID.IsEmpty() {
		return nil, shortlist.ErrInvalidRequest().WithDetail("missing", "applicationId is required")
	}

	if _, err := s.requireCompany(ctx, companyEmail); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("id", req.ApplicationID.String())
	}

	entry := &shortlist.Shortlist{
		ID:             kernel.NewShortlistID(uuid.NewString()),
		CompanyEmail:   companyEmail,
		ApplicationID:  app.ID,
		JobID:          app.JobID,
		CandidateEmail: app.CandidateEmail,
		CandidateName:  app.CandidateName,
		Status:         app.Status,
		CreatedAt:      time.Now(),
	}

	if err := s.shortlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List retrieves the caller's shortlist entries, newest first
func (s *ShortlistService) List(ctx context.Context, companyEmail kernel.Email) ([]shortlist.Shortlist, error) {
	entries, err := s.shortlistRepo.ListByCompany(ctx, companyEmail)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list shortlist", errx.TypeInternal)
	}
	return entries, nil
}

// Remove deletes a shortlist entry owned by the caller
func (s *ShortlistService) Remove(ctx context.Context, id kernel.ShortlistID, companyEmail kernel.Email) error {
	return s.shortlistRepo.Delete(ctx, id, companyEmail)
}

// Dashboard builds the company dashboard aggregate: a page of the company's
// postings with one grouped count over their applications, the cross-job
// application list flagged with its shortlist state, and the company's own
// name and status. No per-job round trips.
func (s *ShortlistService) Dashboard(ctx context.Context, req shortlist.DashboardRequest) (*shortlist.DashboardResponse, error) {
	company, err := s.requireCompany(ctx, req.CompanyEmail)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, req.CompanyEmail, req.Pagination.Normalized())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list company jobs", errx.TypeInternal)
	}

	jobIDs := make([]kernel.JobID, 0, len(jobs.Items))
	for i := range jobs.Items {
		jobIDs = append(jobIDs, jobs.Items[i].ID)
	}

	counts, err := s.applicationRepo.CountByJob(ctx, jobIDs)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	shortlisted, err := s.shortlistRepo.ListApplicationIDs(ctx, req.CompanyEmail)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load shortlisted ids", errx.TypeInternal)
	}
	shortlistedSet := make(map[kernel.ApplicationID]bool, len(shortlisted))
	for _, id := range shortlisted {
		shortlistedSet[id] = true
	}

	summaries := make([]shortlist.JobSummary, 0, len(jobs.Items))
	for i := range jobs.Items {
		summaries = append(summaries, shortlist.JobSummary{
			Job:              jobs.Items[i],
			ApplicationCount: counts[jobs.Items[i].ID],
		})
	}

	apps, err := s.applicationRepo.ListByCompany(ctx, req.CompanyEmail)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list company applications", errx.TypeInternal)
	}
	appSummaries := make([]shortlist.ApplicationSummary, 0, len(apps))
	for i := range apps {
		appSummaries = append(appSummaries, shortlist.ApplicationSummary{
			Application: apps[i],
			Shortlisted: shortlistedSet[apps[i].ID],
		})
	}

	total, err := s.jobRepo.CountByCompany(ctx, req.CompanyEmail)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count company jobs", errx.TypeInternal)
	}

	return &shortlist.DashboardResponse{
		CompanyName:   company.DisplayName,
		CompanyStatus: company.Status,
		Jobs: &kernel.Paginated[shortlist.JobSummary]{
			Items: summaries,
			Page:  jobs.Page,
			Empty: jobs.Empty,
		},
		Applications: appSummaries,
		Shortlisted:  shortlisted,
		TotalJobs:    total,
	}, nil
}

// requireCompany resolves the caller and verifies they are a company account
func (s *ShortlistService) requireCompany(ctx context.Context, email kernel.Email) (*user.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, shortlist.ErrNotCompany().WithDetail("email", email.String())
	}
	if u.Role != auth.RoleCompany {
		return nil, shortlist.ErrNotCompany().WithDetail("role", u.Role)
	}
	return u, nil
}
