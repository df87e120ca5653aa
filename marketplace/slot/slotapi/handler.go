package slotapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/marketplace/slot"
	"github.com/interviewmate/backend/marketplace/slot/slotsrv"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Handlers provides HTTP handlers for slot bookings and the payment queue
type Handlers struct {
	service *slotsrv.SlotService
}

// NewHandlers creates a new slot handlers instance
func NewHandlers(service *slotsrv.SlotService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Submit records a booking from the public apply form
// POST /api/applications
func (h *Handlers) Submit(c *fiber.Ctx) error {
	var req slot.SubmitSlotApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return slot.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.Submit(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// ListAll retrieves every slot application, newest first
// GET /api/applications
func (h *Handlers) ListAll(c *fiber.Ctx) error {
	apps, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// PaymentQueue sweeps stale unpaid bookings and returns the filtered queue
// GET /api/admin/candidate-payment?status=unpaid&page=1&limit=10
func (h *Handlers) PaymentQueue(c *fiber.Ctx) error {
	req := slot.PaymentQueueRequest{
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("limit", 10),
		},
	}

	if raw := c.Query("status"); raw != "" {
		status := slot.PaymentStatus(raw)
		req.PaymentStatus = &status
	}

	queue, err := h.service.ReviewPaymentQueue(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(queue)
}

// UpdatePaymentOrApproval toggles the payment/approval axes
// PATCH /api/admin/candidate-payment/:id
func (h *Handlers) UpdatePaymentOrApproval(c *fiber.Ctx) error {
	id := kernel.SlotApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return slot.ErrSlotApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req slot.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return slot.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	app, err := h.service.UpdatePaymentOrApproval(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// DeleteUnpaid removes an unpaid booking; paid ones are protected
// DELETE /api/admin/candidate-payment/:id
func (h *Handlers) DeleteUnpaid(c *fiber.Ctx) error {
	id := kernel.SlotApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return slot.ErrSlotApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteUnpaid(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers slot booking and payment queue routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	// The apply form is public
	public := app.Group("/api/applications")
	public.Post("/", handlers.Submit)
	public.Get("/", handlers.ListAll)

	admin := app.Group("/api/admin/candidate-payment",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
	)
	admin.Get("/", handlers.PaymentQueue)
	admin.Patch("/:id", handlers.UpdatePaymentOrApproval)
	admin.Delete("/:id", handlers.DeleteUnpaid)
}
