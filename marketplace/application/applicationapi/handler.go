package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/marketplace/application/applicationsrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for the application lifecycle
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Submit applies the authenticated candidate to a job
// POST /api/users-jobs-application
func (h *Handlers) Submit(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	// The caller's identity always wins over whatever the body claims
	req.CandidateUID = authCtx.ExternalUID
	if req.CandidateEmail.IsEmpty() {
		req.CandidateEmail = authCtx.Email
	}

	app, err := h.service.Submit(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// List retrieves applications filtered by candidate and/or job, newest first
// GET /api/users-jobs-application?candidateUid=...&jobId=...
func (h *Handlers) List(c *fiber.Ctx) error {
	req := application.ListApplicationsRequest{
		CandidateUID: kernel.ExternalUID(c.Query("candidateUid")),
		JobID:        kernel.JobID(c.Query("jobId")),
	}

	apps, err := h.service.List(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListMine retrieves the caller's own applications, paginated
// GET /api/users-jobs-application/mine?page=...&limit=...
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", 20),
	}

	apps, err := h.service.ListMine(c.Context(), authCtx.ExternalUID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// GetByID retrieves a single application
// GET /api/users-jobs-application/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id := kernel.ApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	app, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// ListForCompany retrieves every application against the caller's postings
// GET /api/users-jobs-application/company
func (h *Handlers) ListForCompany(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	apps, err := h.service.ListForCompany(c.Context(), authCtx.Email)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// UpdateStatus moves an application through its workflow
// PATCH /api/users-jobs-application/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.ApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.UpdateStatus(c.Context(), id, authCtx.Email, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// Delete removes an application together with its shortlist entries
// DELETE /api/users-jobs-application/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.ApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Delete(c.Context(), id, authCtx.Email); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers application lifecycle routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/users-jobs-application", authMiddleware.Authenticate())

	api.Post("/", authMiddleware.RequireRole(auth.RoleCandidate), handlers.Submit)
	api.Get("/", handlers.List)
	api.Get("/mine", authMiddleware.RequireRole(auth.RoleCandidate), handlers.ListMine)
	api.Get("/company",
		authMiddleware.RequireRole(auth.RoleCompany, auth.RoleHR),
		handlers.ListForCompany,
	)
	api.Get("/:id", handlers.GetByID)
	api.Patch("/:id/status",
		authMiddleware.RequireRole(auth.RoleCompany, auth.RoleHR),
		handlers.UpdateStatus,
	)
	api.Delete("/:id",
		authMiddleware.RequireRole(auth.RoleCompany, auth.RoleHR),
		handlers.Delete,
	)
}
