package interviewapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/interview"
	"github.com/interviewmate/backend/marketplace/interview/interviewsrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for scheduled interviews
type Handlers struct {
	service *interviewsrv.InterviewService
}

// NewHandlers creates a new interview handlers instance
func NewHandlers(service *interviewsrv.InterviewService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Promote schedules an interview from a slot application
// POST /api/interviews-candidate
func (h *Handlers) Promote(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req interview.PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Promote(c.Context(), authCtx.Email, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List retrieves all scheduled interviews
// GET /api/interviews-candidate
func (h *Handlers) List(c *fiber.Ctx) error {
	candidates, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// GetByID retrieves a scheduled interview
// GET /api/interviews-candidate/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id := kernel.InterviewID(c.Params("id"))
	if id.IsEmpty() {
		return interview.ErrInterviewNotFound().WithDetail("id", "missing or empty")
	}

	candidate, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(candidate)
}

// RegisterRoutes registers scheduled interview routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/interviews-candidate",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleHR, auth.RoleCompany, auth.RoleAdmin),
	)

	api.Post("/", handlers.Promote)
	api.Get("/", handlers.List)
	api.Get("/:id", handlers.GetByID)
}
