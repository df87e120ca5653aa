package shortlistapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/shortlist"
	"github.com/interviewmate/backend/marketplace/shortlist/shortlistsrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for shortlists and the company dashboard
type Handlers struct {
	service *shortlistsrv.ShortlistService
}

// NewHandlers creates a new shortlist handlers instance
func NewHandlers(service *shortlistsrv.ShortlistService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Add saves an application to the caller's shortlist
// POST /api/shortlists
func (h *Handlers) Add(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req shortlist.AddToShortlistRequest
	if err := c.BodyParser(&req); err != nil {
		return shortlist.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	entry, err := h.service.Add(c.Context(), authCtx.Email, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List retrieves the caller's shortlist
// GET /api/shortlists
func (h *Handlers) List(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	entries, err := h.service.List(c.Context(), authCtx.Email)
	if err != nil {
		return err
	}

	return c.JSON(entries)
}

// Remove deletes a shortlist entry
// DELETE /api/shortlists/:id
func (h *Handlers) Remove(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.ShortlistID(c.Params("id"))
	if id.IsEmpty() {
		return shortlist.ErrShortlistNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Remove(c.Context(), id, authCtx.Email); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Dashboard returns the company's postings with applicant counts and the
// shortlisted ID set
// GET /api/shortlists/dashboard
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	req := shortlist.DashboardRequest{
		CompanyEmail: authCtx.Email,
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("limit", 10),
		},
	}

	resp, err := h.service.Dashboard(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers shortlist routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/shortlists",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleCompany),
	)

	api.Post("/", handlers.Add)
	api.Get("/", handlers.List)
	api.Get("/dashboard", handlers.Dashboard)
	api.Delete("/:id", handlers.Remove)
}
