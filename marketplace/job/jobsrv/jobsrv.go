package jobsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
)

// JobService provides business operations for the job catalog
type JobService struct {
	jobRepo  job.Repository
	userRepo user.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	userRepo user.Repository,
) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob creates a new job posting. Only active company accounts may post.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest, companyEmail kernel.Email) (*job.Job, error) {
	if req.Title == "" || req.Sector == "" {
		return nil, job.ErrInvalidRequest().WithDetail("missing", "title and sector are required")
	}
	if !req.Type.IsValid() {
		return nil, job.ErrInvalidRequest().WithDetail("job_type", req.Type)
	}

	poster, err := s.userRepo.GetByEmail(ctx, companyEmail)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("email", companyEmail.String())
	}

	if !poster.CanPostJobs() {
		return nil, job.ErrInsufficientPermissions().
			WithDetail("role", poster.Role).
			WithDetail("status", poster.Status)
	}

	now := time.Now()
	newJob := &job.Job{
		ID:               kernel.NewJobID(uuid.NewString()),
		Title:            req.Title,
		Sector:           req.Sector,
		Type:             req.Type,
		Location:         req.Location,
		Vacancy:          req.Vacancy,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		PostedAt:         now,
		Deadline:         req.Deadline,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		CreatedByEmail:   companyEmail,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}
	return jobEntity, nil
}

// ListJobs retrieves the public catalog with filters and pagination
func (s *JobService) ListJobs(ctx context.Context, req job.ListJobsRequest) (*job.PaginatedJobsResponse, error) {
	req.Pagination = req.Pagination.Normalized()

	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	return jobs, nil
}

// ListCompanyJobs retrieves a company's own postings
func (s *JobService) ListCompanyJobs(ctx context.Context, companyEmail kernel.Email, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListByCompany(ctx, companyEmail, pagination.Normalized())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list company jobs", errx.TypeInternal)
	}

	return jobs, nil
}
