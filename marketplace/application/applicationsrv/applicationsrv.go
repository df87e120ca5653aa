package applicationsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/interviewmate/backend/pkg/logx"
)

// ApplicationService manages the job application lifecycle
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Submit records a candidate's application to a job. Duplicate submissions
// bounce off the unique (job_id, candidate_uid) index and surface as a
// conflict; closed postings are rejected up front.
func (s *ApplicationService) Submit(ctx context.Context, req application.SubmitApplicationRequest) (*application.Application, error) {
	if req.JobID.IsEmpty() || req.CandidateUID.IsEmpty() || req.CandidateEmail.IsEmpty() {
		return nil, application.ErrInvalidRequest().
			WithDetail("missing", "jobId, candidateUid and candidateEmail are required")
	}

	j, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	if j.DeadlinePassed(time.Now()) {
		return nil, application.ErrDeadlinePassed().WithDetail("deadline", j.Deadline)
	}

	now := time.Now()
	appliedAt := now
	if req.AppliedAt != nil {
		appliedAt = *req.AppliedAt
	}

	app := &application.Application{
		ID:             kernel.NewApplicationID(uuid.NewString()),
		JobID:          j.ID,
		CandidateUID:   req.CandidateUID,
		CandidateEmail: kernel.NewEmail(req.CandidateEmail.String()),
		CandidateName:  req.CandidateName,
		CandidatePhone: req.CandidatePhone,
		ResumeURL:      req.ResumeURL,
		JobTitle:       j.Title,
		CompanyName:    companyNameFor(j),
		CompanyEmail:   j.CreatedByEmail,
		Sector:         j.Sector,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		Status:         application.ApplicationStatusSubmitted,
		AppliedAt:      appliedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	logx.Infof("application %s submitted for job %s by %s", app.ID, app.JobID, app.CandidateUID)
	return app, nil
}

// companyNameFor picks the display name snapshotted onto the application.
// Postings carry no structured company name, so the owning email stands in.
func companyNameFor(j *job.Job) string {
	return j.CreatedByEmail.String()
}

// List retrieves applications matching the optional candidate/job filters,
// newest first. A single-element result against both filters is the
// "already applied" probe the catalog UI uses.
func (s *ApplicationService) List(ctx context.Context, req application.ListApplicationsRequest) ([]application.Application, error) {
	apps, err := s.applicationRepo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}
	return apps, nil
}

// ListMine retrieves the caller's own applications, newest first, paginated
func (s *ApplicationService) ListMine(ctx context.Context, candidateUID kernel.ExternalUID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	apps, err := s.applicationRepo.ListByCandidate(ctx, candidateUID, pagination.Normalized())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidate applications", errx.TypeInternal)
	}
	return apps, nil
}

// GetByID retrieves a single application
func (s *ApplicationService) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("id", id.String())
	}
	return app, nil
}

// ListForCompany retrieves every application across the company's postings
func (s *ApplicationService) ListForCompany(ctx context.Context, companyEmail kernel.Email) ([]application.Application, error) {
	apps, err := s.applicationRepo.ListByCompany(ctx, companyEmail)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list company applications", errx.TypeInternal)
	}
	return apps, nil
}

// UpdateStatus moves an application through its workflow on behalf of the
// owning company.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, companyEmail kernel.Email, newStatus application.ApplicationStatus) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("id", id.String())
	}

	if err := s.requireOwnership(ctx, app, companyEmail); err != nil {
		return nil, err
	}

	if err := app.UpdateStatus(newStatus); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, app.ID, app.Status); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	return app, nil
}

// Delete removes an application on behalf of the owning company, dropping
// any shortlist entries pointing at it in the same transaction.
func (s *ApplicationService) Delete(ctx context.Context, id kernel.ApplicationID, companyEmail kernel.Email) error {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("id", id.String())
	}

	if err := s.requireOwnership(ctx, app, companyEmail); err != nil {
		return err
	}

	if err := s.applicationRepo.DeleteCascade(ctx, app.ID, companyEmail); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	logx.Infof("application %s deleted by %s", app.ID, companyEmail)
	return nil
}

// requireOwnership verifies the job behind the application belongs to the
// company. A missing job also reads as forbidden rather than leaking that
// the posting is gone.
func (s *ApplicationService) requireOwnership(ctx context.Context, app *application.Application, companyEmail kernel.Email) error {
	j, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return application.ErrNotJobOwner().WithDetail("job_id", app.JobID.String())
	}
	if !j.IsOwnedBy(companyEmail) {
		return application.ErrNotJobOwner().
			WithDetail("job_id", j.ID.String()).
			WithDetail("company", companyEmail.String())
	}
	return nil
}
