package reviewapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/review"
	"github.com/interviewmate/backend/marketplace/review/reviewsrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for reviews and the leaderboard
type Handlers struct {
	service *reviewsrv.ReviewService
}

// NewHandlers creates a new review handlers instance
func NewHandlers(service *reviewsrv.ReviewService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Grade records a graded interview and returns the refreshed standing
// POST /api/reviews
func (h *Handlers) Grade(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req review.GradeInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return review.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if req.InterviewerEmail.IsEmpty() {
		req.InterviewerEmail = authCtx.Email
	}

	entry, err := h.service.GradeInterview(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListForCandidate retrieves a candidate's reviews
// GET /api/reviews?email=...
func (h *Handlers) ListForCandidate(c *fiber.Ctx) error {
	email := kernel.Email(c.Query("email"))
	if email.IsEmpty() {
		return review.ErrInvalidRequest().WithDetail("missing", "email is required")
	}

	reviews, err := h.service.ListReviews(c.Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(reviews)
}

// Leaderboard retrieves a page of the leaderboard
// GET /api/reviews/leaderboard
func (h *Handlers) Leaderboard(c *fiber.Ctx) error {
	req := review.LeaderboardRequest{
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("limit", 10),
		},
	}

	board, err := h.service.GetLeaderboard(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(board)
}

// Top retrieves the hot ranking
// GET /api/reviews/top?n=10
func (h *Handlers) Top(c *fiber.Ctx) error {
	ranked, err := h.service.TopN(c.Context(), int64(c.QueryInt("n", 10)))
	if err != nil {
		return err
	}

	return c.JSON(ranked)
}

// Standing retrieves a single candidate's leaderboard entry
// GET /api/reviews/standing/:email
func (h *Handlers) Standing(c *fiber.Ctx) error {
	email := kernel.Email(c.Params("email"))
	if email.IsEmpty() {
		return review.ErrInvalidRequest().WithDetail("missing", "email is required")
	}

	entry, err := h.service.GetCandidateStanding(c.Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(entry)
}

// Rebuild recomputes the leaderboard from the review rows
// POST /api/reviews/rebuild
func (h *Handlers) Rebuild(c *fiber.Ctx) error {
	count, err := h.service.RebuildLeaderboard(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"entries": count})
}

// RegisterRoutes registers review and leaderboard routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/reviews")

	// The leaderboard is public; grading and rebuilding are not
	api.Get("/leaderboard", handlers.Leaderboard)
	api.Get("/top", handlers.Top)
	api.Get("/standing/:email", handlers.Standing)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleHR, auth.RoleCompany, auth.RoleAdmin),
		handlers.Grade,
	)
	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.ListForCandidate,
	)
	api.Post("/rebuild",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.Rebuild,
	)
}
