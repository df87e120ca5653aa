package userapi

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/marketplace/user/usersrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for user and admin-moderation operations
type Handlers struct {
	service *usersrv.UserService
}

// NewHandlers creates a new user handlers instance
func NewHandlers(service *usersrv.UserService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Resolve resolves an external identity into a local user and issues a token
// POST /api/users/resolve
func (h *Handlers) Resolve(c *fiber.Ctx) error {
	var req user.ResolveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resolved, token, err := h.service.Resolve(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.ToResponse(resolved),
	})
}

// Login authenticates a password-holding account
// POST /api/users/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me returns the caller's own user record
// GET /api/users/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.GetByUID(c.Context(), authCtx.ExternalUID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateProfile overwrites the caller's role-specific profile
// PATCH /api/users/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req user.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateOwnProfile(c.Context(), authCtx.ExternalUID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UploadResume stores a candidate resume file
// POST /api/users/resume
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return user.ErrInvalidRequest().WithDetail("resume", "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return user.ErrInvalidRequest().WithDetail("resume", "cannot open file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return user.ErrInvalidRequest().WithDetail("resume", "cannot read file")
	}

	resp, err := h.service.UploadResume(c.Context(), authCtx.ExternalUID, fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPendingAccounts returns the admin review queue for a role
// GET /api/admin/pending-company, GET /api/admin/pending-hr
func (h *Handlers) ListPendingAccounts(role auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := user.ListAccountsRequest{
			Role:       role,
			Pagination: parsePaginationOptions(c),
		}

		if statusParam := c.Query("status"); statusParam != "" {
			status := user.UserStatus(statusParam)
			req.Status = &status
		}

		resp, err := h.service.ListPendingAccounts(c.Context(), req)
		if err != nil {
			return err
		}

		return c.JSON(resp)
	}
}

// ModerateAccount flips status or overwrites the profile of an account
// PATCH /api/admin/pending-company/:id, PATCH /api/admin/pending-hr/:id
func (h *Handlers) ModerateAccount(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("id"))
	if userID.IsEmpty() {
		return user.ErrUserNotFound().WithDetail("id", "missing or empty")
	}

	var req struct {
		Status  *user.UserStatus           `json:"status,omitempty"`
		Profile *user.UpdateProfileRequest `json:"profile,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if req.Status != nil {
		if err := h.service.FlipAccountStatus(c.Context(), userID, *req.Status); err != nil {
			return err
		}
	}

	if req.Profile != nil {
		if _, err := h.service.EditPendingProfile(c.Context(), userID, *req.Profile); err != nil {
			return err
		}
	}

	if req.Status == nil && req.Profile == nil {
		return user.ErrInvalidRequest().WithDetail("body", "status or profile required")
	}

	return c.JSON(fiber.Map{"message": "Account updated"})
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", 10),
	}.Normalized()
}

// RegisterRoutes registers user and admin-moderation routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	users := app.Group("/api/users")

	users.Post("/resolve", handlers.Resolve)
	users.Post("/login", handlers.Login)

	users.Get("/me",
		authMiddleware.Authenticate(),
		handlers.Me,
	)

	users.Patch("/profile",
		authMiddleware.Authenticate(),
		handlers.UpdateProfile,
	)

	users.Post("/resume",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleCandidate),
		handlers.UploadResume,
	)

	admin := app.Group("/api/admin",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
	)

	admin.Get("/pending-company", handlers.ListPendingAccounts(auth.RoleCompany))
	admin.Patch("/pending-company/:id", handlers.ModerateAccount)
	admin.Get("/pending-hr", handlers.ListPendingAccounts(auth.RoleHR))
	admin.Patch("/pending-hr/:id", handlers.ModerateAccount)
}
