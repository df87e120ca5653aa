package interviewsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/interview"
	"github.com/interviewmate/backend/marketplace/slot"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/interviewmate/backend/pkg/logx"
)

// InterviewService promotes slot applications into scheduled interviews
type InterviewService struct {
	interviewRepo interview.Repository
	slotRepo      slot.Repository
	userRepo      user.Repository
}

// NewInterviewService creates a new instance of the interview service
func NewInterviewService(
	interviewRepo interview.Repository,
	slotRepo slot.Repository,
	userRepo user.Repository,
) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		slotRepo:      slotRepo,
		userRepo:      userRepo,
	}
}

// Promote schedules an interview from a slot application. The unique index
// on application_id makes double-scheduling a conflict. An unpaid or
// unapproved booking still promotes; the response flags it so the caller
// can warn.
func (s *InterviewService) Promote(ctx context.Context, creatorEmail kernel.Email, req interview.PromoteRequest) (*interview.PromoteResponse, error) {
	if req.ApplicationID.IsEmpty() {
		return nil, interview.ErrInvalidRequest().WithDetail("missing", "applicationId is required")
	}

	if err := s.requireScheduler(ctx, creatorEmail); err != nil {
		return nil, err
	}

	app, err := s.slotRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, slot.ErrSlotApplicationNotFound().WithDetail("id", req.ApplicationID.String())
	}

	roomID := req.RoomID
	if roomID.IsEmpty() {
		roomID = kernel.NewRoomID(uuid.NewString())
	}

	candidate := &interview.InterviewCandidate{
		ID:             kernel.NewInterviewID(uuid.NewString()),
		ApplicationID:  app.ID,
		Name:           app.Name,
		Email:          app.Email,
		Date:           app.Date,
		TimeSlot:       app.TimeSlot,
		Topic:          app.Topic,
		PaymentStatus:  app.PaymentStatus,
		ApprovalStatus: app.ApprovalStatus,
		RoomID:         roomID,
		CreatedBy:      creatorEmail,
		CreatedAt:      time.Now(),
	}

	if err := s.interviewRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	if !candidate.IsReady() {
		logx.Warnf("interview %s scheduled from not-ready application %s (payment=%s approval=%s)",
			candidate.ID, app.ID, app.PaymentStatus, app.ApprovalStatus)
	}

	return &interview.PromoteResponse{
		Interview: candidate,
		Ready:     candidate.IsReady(),
	}, nil
}

// List retrieves all scheduled interviews, newest first
func (s *InterviewService) List(ctx context.Context) ([]interview.InterviewCandidate, error) {
	candidates, err := s.interviewRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list interviews", errx.TypeInternal)
	}
	return candidates, nil
}

// GetByID retrieves a scheduled interview
func (s *InterviewService) GetByID(ctx context.Context, id kernel.InterviewID) (*interview.InterviewCandidate, error) {
	candidate, err := s.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, interview.ErrInterviewNotFound().WithDetail("id", id.String())
	}
	return candidate, nil
}

// requireScheduler verifies the creator is an active hr/company account
func (s *InterviewService) requireScheduler(ctx context.Context, email kernel.Email) error {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return interview.ErrNotScheduler().WithDetail("email", email.String())
	}
	if !u.CanScheduleInterviews() {
		return interview.ErrNotScheduler().
			WithDetail("role", u.Role).
			WithDetail("status", u.Status)
	}
	return nil
}
