package repositories

import (
	"context"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
)

// ListDaresFilter carries the optional predicate and paging window for dare
// listings. The same filter backs both the page query and the total-count
// query so the two can never drift apart.
type ListDaresFilter struct {
	Status     *domain.DareStatus
	CategoryID *string
	Limit      int
	Offset     int
}

// DareRepository defines persistence operations over dares, participants
// and votes, including the transactional lifecycle writes.
type DareRepository interface {
	// SaveDare inserts a new dare.
	SaveDare(ctx context.Context, dare domain.Dare) error

	// FindDareByID returns the dare, or apperrors.ErrNotFound.
	FindDareByID(ctx context.Context, dareID string) (*domain.Dare, error)

	// FindDareSummaryByID returns the dare enriched with creator, category
	// and participant count, or apperrors.ErrNotFound.
	FindDareSummaryByID(ctx context.Context, dareID string) (*domain.DareSummary, error)

	// ListDares returns one page of dares matching the filter plus the total
	// match count, newest first.
	ListDares(ctx context.Context, filter ListDaresFilter) ([]domain.DareSummary, int64, error)

	// ListDaresByCreator returns all dares created by the user, newest first.
	ListDaresByCreator(ctx context.Context, userID string) ([]domain.DareSummary, error)

	// JoinDare atomically checks the dare accepts joins, inserts the
	// participant row and adds the entry fee to the prize pool. The unique
	// (dare_id, user_id) constraint is the source of truth for duplicate
	// joins and surfaces as apperrors.ErrDuplicate.
	JoinDare(ctx context.Context, dareID string, userID string) (*domain.Participant, error)

	// FindParticipantByDareAndUser returns the participant row for the pair,
	// or apperrors.ErrNotFound.
	FindParticipantByDareAndUser(ctx context.Context, dareID string, userID string) (*domain.Participant, error)

	// UpdateSubmission overwrites the participant's submission fields and
	// refreshes updated_at. Last write wins.
	UpdateSubmission(ctx context.Context, dareID string, userID string, submissionURL string, submissionCaption string) error

	// SaveVote atomically inserts a vote and increments the participant's
	// votes_count in the same transaction. Self-votes surface as
	// apperrors.ErrSelfVote, duplicates as apperrors.ErrDuplicate.
	SaveVote(ctx context.Context, participantID string, voterUserID string, isBoosted bool) (*domain.Vote, error)

	// ListParticipants returns the dare's participants ordered by votes_count
	// descending then created_at ascending (earlier joiners rank higher on ties).
	ListParticipants(ctx context.Context, dareID string) ([]domain.ParticipantDetail, error)

	// ListParticipationsByUser returns the user's enrollments with their
	// dares' headline fields, newest first.
	ListParticipationsByUser(ctx context.Context, userID string) ([]domain.ParticipationSummary, error)
}

// CategoryRepository defines read operations over the category taxonomy.
type CategoryRepository interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
