package jobapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/marketplace/job/jobsrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for the job catalog
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new posting for the authenticated company
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req, authCtx.Email)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJobByID retrieves a posting
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobEntity, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobEntity)
}

// ListJobs retrieves the public catalog
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	req := job.ListJobsRequest{
		Sector:     kernel.JobSector(c.Query("sector")),
		Company:    kernel.Email(c.Query("company")),
		OpenOnly:   c.QueryBool("open", false),
		Pagination: parsePaginationOptions(c),
	}

	jobs, err := h.service.ListJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", 10),
	}.Normalized()
}

// RegisterRoutes registers job catalog routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/jobs")

	// The catalog is public; posting requires an authenticated company
	api.Get("/", handlers.ListJobs)
	api.Get("/:id", handlers.GetJobByID)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleCompany),
		handlers.CreateJob,
	)
}
