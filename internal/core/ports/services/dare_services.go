package services

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/dare2earn/d2e_backend/internal/dto"
)

// DareSvcFacade defines the interface for the dare lifecycle engine and the
// listing layer over dares, participants and votes.
type DareSvcFacade interface {
	// CreateDare validates entryFee >= 0 and startTime < endTime, then
	// persists a new open dare with an empty prize pool.
	CreateDare(ctx context.Context, creatorUserID string, req dto.CreateDareRequest) (*domain.Dare, error)

	// GetDare returns the dare with its participants in ranking order
	// (votes_count descending, created_at ascending).
	GetDare(ctx context.Context, dareID string) (*domain.DareSummary, []domain.ParticipantDetail, error)

	// ListDares returns one page of dares with pagination metadata. The same
	// predicate backs the page and the total count.
	ListDares(ctx context.Context, params dto.ListDaresParams) (*dto.ListDaresResponse, error)

	// JoinDare enrolls the user in an open, unended dare, adding the entry
	// fee to the prize pool atomically. A second join by the same user
	// yields apperrors.ErrDuplicate and leaves the pool untouched.
	JoinDare(ctx context.Context, dareID string, userID string) (*domain.Participant, error)

	// Submit upserts the user's submission for a dare they joined. Without a
	// participant row the call yields apperrors.ErrForbidden.
	Submit(ctx context.Context, dareID string, userID string, req dto.SubmitRequest) error

	// Vote records one vote by the voter for the participant's submission,
	// incrementing the tally in the same transaction. Self-votes and
	// duplicates are rejected.
	Vote(ctx context.Context, participantID string, voterUserID string, isBoosted bool) error

	// ListDaresByCreator returns the user's own dares, newest first.
	ListDaresByCreator(ctx context.Context, userID string) ([]domain.DareSummary, error)

	// ListParticipationsByUser returns the user's enrollments, newest first.
	ListParticipationsByUser(ctx context.Context, userID string) ([]domain.ParticipationSummary, error)
}

// CategorySvcFacade defines the interface for the category taxonomy lookup.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// LedgerSvcFacade defines the interface for reads over the append-only
// side-effect tables.
type LedgerSvcFacade interface {
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
}
