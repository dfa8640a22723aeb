package services

import (
	"context"
	"errors"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/dare2earn/d2e_backend/internal/dto"
	"github.com/dare2earn/d2e_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dareService implements the DareSvcFacade over the dare repository.
type dareService struct {
	dareRepo portsrepo.DareRepository
}

// NewDareService creates a new instance of dareService.
func NewDareService(dareRepo portsrepo.DareRepository) portssvc.DareSvcFacade {
	return &dareService{dareRepo: dareRepo}
}

func (s *dareService) CreateDare(ctx context.Context, creatorUserID string, req dto.CreateDareRequest) (*domain.Dare, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EntryFee.IsNegative() {
		return nil, apperrors.NewValidationError("entry fee cannot be negative")
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperrors.NewValidationError("start time must be before end time")
	}

	mediaType := req.SubmissionMediaType
	if mediaType == "" {
		mediaType = "any"
	}

	now := time.Now()
	dare := domain.Dare{
		DareID:              uuid.NewString(),
		Title:               req.Title,
		Description:         req.Description,
		CreatedByUserID:     creatorUserID,
		EntryFee:            req.EntryFee,
		CategoryID:          req.CategoryID,
		PrizePool:           decimal.Zero,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Status:              domain.DareOpen,
		SubmissionMediaType: mediaType,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.dareRepo.SaveDare(ctx, dare); err != nil {
		return nil, err
	}
	logger.Info("dare created", "dare_id", dare.DareID, "creator_user_id", creatorUserID)
	return &dare, nil
}

func (s *dareService) GetDare(ctx context.Context, dareID string) (*domain.DareSummary, []domain.ParticipantDetail, error) {
	summary, err := s.dareRepo.FindDareSummaryByID(ctx, dareID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("dare not found")
		}
		return nil, nil, err
	}

	participants, err := s.dareRepo.ListParticipants(ctx, dareID)
	if err != nil {
		return nil, nil, err
	}
	return summary, participants, nil
}

func (s *dareService) ListDares(ctx context.Context, params dto.ListDaresParams) (*dto.ListDaresResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := portsrepo.ListDaresFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if params.Status != "" {
		status := domain.DareStatus(params.Status)
		switch status {
		case domain.DareOpen, domain.DareClosed, domain.DareCompleted, domain.DareCancelled:
			filter.Status = &status
		default:
			return nil, apperrors.NewValidationError("invalid status filter")
		}
	}
	if params.CategoryID != "" {
		filter.CategoryID = &params.CategoryID
	}

	summaries, total, err := s.dareRepo.ListDares(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	resp := &dto.ListDaresResponse{
		Dares: make([]dto.DareResponse, 0, len(summaries)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
	for _, s := range summaries {
		resp.Dares = append(resp.Dares, dto.ToDareResponse(s))
	}
	return resp, nil
}

func (s *dareService) JoinDare(ctx context.Context, dareID string, userID string) (*domain.Participant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	participant, err := s.dareRepo.JoinDare(ctx, dareID, userID)
	if err != nil {
		return nil, err
	}
	logger.Info("user joined dare", "dare_id", dareID, "participant_id", participant.ParticipantID)
	return participant, nil
}

func (s *dareService) Submit(ctx context.Context, dareID string, userID string, req dto.SubmitRequest) error {
	dare, err := s.dareRepo.FindDareByID(ctx, dareID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("dare not found")
		}
		return err
	}
	if dare.Status != domain.DareOpen {
		return apperrors.NewInvalidStateError("this dare is no longer accepting submissions")
	}

	if _, err := s.dareRepo.FindParticipantByDareAndUser(ctx, dareID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewForbiddenError("you must join this dare before submitting")
		}
		return err
	}

	return s.dareRepo.UpdateSubmission(ctx, dareID, userID, req.SubmissionURL, req.SubmissionCaption)
}

func (s *dareService) Vote(ctx context.Context, participantID string, voterUserID string, isBoosted bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	vote, err := s.dareRepo.SaveVote(ctx, participantID, voterUserID, isBoosted)
	if err != nil {
		return err
	}
	logger.Info("vote recorded", "vote_id", vote.VoteID, "participant_id", participantID)
	return nil
}

func (s *dareService) ListDaresByCreator(ctx context.Context, userID string) ([]domain.DareSummary, error) {
	return s.dareRepo.ListDaresByCreator(ctx, userID)
}

func (s *dareService) ListParticipationsByUser(ctx context.Context, userID string) ([]domain.ParticipationSummary, error) {
	return s.dareRepo.ListParticipationsByUser(ctx, userID)
}
