package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dare2earn/d2e_backend/internal/apperrors"
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	"github.com/dare2earn/d2e_backend/internal/models"
	"github.com/dare2earn/d2e_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDareRepository struct {
	BaseRepository
}

func newPgxDareRepository(pool *pgxpool.Pool) *PgxDareRepository {
	return &PgxDareRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDareRepository implements portsrepo.DareRepository
var _ portsrepo.DareRepository = (*PgxDareRepository)(nil)

const dareColumns = `dare_id, title, description, created_by_user_id, entry_fee, category_id,
		prize_pool, start_time, end_time, status, submission_media_type, created_at, updated_at`

func scanDare(row pgx.Row) (*models.Dare, error) {
	var m models.Dare
	err := row.Scan(
		&m.DareID,
		&m.Title,
		&m.Description,
		&m.CreatedByUserID,
		&m.EntryFee,
		&m.CategoryID,
		&m.PrizePool,
		&m.StartTime,
		&m.EndTime,
		&m.Status,
		&m.SubmissionMediaType,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanParticipant(row pgx.Row) (*models.DareParticipant, error) {
	var m models.DareParticipant
	err := row.Scan(
		&m.ParticipantID,
		&m.DareID,
		&m.UserID,
		&m.SubmissionURL,
		&m.SubmissionCaption,
		&m.VotesCount,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxDareRepository) SaveDare(ctx context.Context, dare domain.Dare) error {
	m := mapping.ToModelDare(dare)
	query := `
		INSERT INTO dares (` + dareColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DareID,
		m.Title,
		m.Description,
		m.CreatedByUserID,
		m.EntryFee,
		m.CategoryID,
		m.PrizePool,
		m.StartTime,
		m.EndTime,
		m.Status,
		m.SubmissionMediaType,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save dare: %w", err)
	}
	return nil
}

func (r *PgxDareRepository) FindDareByID(ctx context.Context, dareID string) (*domain.Dare, error) {
	query := `SELECT ` + dareColumns + ` FROM dares WHERE dare_id = $1;`
	m, err := scanDare(r.Pool.QueryRow(ctx, query, dareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dare by ID %s: %w", dareID, err)
	}
	d := mapping.ToDomainDare(*m)
	return &d, nil
}

// dareSummarySelect joins the creator, category and participant aggregate
// onto the dare row. Shared by the listing and detail reads.
const dareSummarySelect = `
	SELECT d.dare_id, d.title, d.description, d.created_by_user_id, d.entry_fee, d.category_id,
		d.prize_pool, d.start_time, d.end_time, d.status, d.submission_media_type,
		d.created_at, d.updated_at,
		u.username AS creator_username,
		u.full_name AS creator_full_name,
		c.name AS category_name,
		COALESCE(pc.count, 0) AS participant_count
	FROM dares d
	LEFT JOIN users u ON d.created_by_user_id = u.user_id
	LEFT JOIN categories c ON d.category_id = c.category_id
	LEFT JOIN (
		SELECT dare_id, COUNT(*) AS count
		FROM dare_participants
		GROUP BY dare_id
	) pc ON d.dare_id = pc.dare_id
`

func scanDareSummary(row pgx.Row) (*domain.DareSummary, error) {
	var m models.Dare
	var s domain.DareSummary
	var creatorUsername, creatorFullName *string
	err := row.Scan(
		&m.DareID,
		&m.Title,
		&m.Description,
		&m.CreatedByUserID,
		&m.EntryFee,
		&m.CategoryID,
		&m.PrizePool,
		&m.StartTime,
		&m.EndTime,
		&m.Status,
		&m.SubmissionMediaType,
		&m.CreatedAt,
		&m.UpdatedAt,
		&creatorUsername,
		&creatorFullName,
		&s.CategoryName,
		&s.ParticipantCount,
	)
	if err != nil {
		return nil, err
	}
	s.Dare = mapping.ToDomainDare(m)
	if creatorUsername != nil {
		s.CreatorUsername = *creatorUsername
	}
	if creatorFullName != nil {
		s.CreatorFullName = *creatorFullName
	}
	return &s, nil
}

// buildDareFilter renders the optional predicate once, so the page query and
// the count query are always backed by the same clause and parameter set.
func buildDareFilter(filter portsrepo.ListDaresFilter) (string, []interface{}) {
	where := "1=1"
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += fmt.Sprintf(" AND d.status = $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += fmt.Sprintf(" AND d.category_id = $%d", len(args))
	}
	return where, args
}

func (r *PgxDareRepository) ListDares(ctx context.Context, filter portsrepo.ListDaresFilter) ([]domain.DareSummary, int64, error) {
	where, args := buildDareFilter(filter)

	countQuery := `SELECT COUNT(*) FROM dares d WHERE ` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count dares: %w", err)
	}

	pageArgs := append(args, filter.Limit, filter.Offset)
	pageQuery := dareSummarySelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)

	rows, err := r.Pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query dares: %w", err)
	}
	defer rows.Close()

	summaries := []domain.DareSummary{}
	for rows.Next() {
		s, err := scanDareSummary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan dare row: %w", err)
		}
		summaries = append(summaries, *s)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating dare rows: %w", rows.Err())
	}

	return summaries, total, nil
}

func (r *PgxDareRepository) FindDareSummaryByID(ctx context.Context, dareID string) (*domain.DareSummary, error) {
	query := dareSummarySelect + ` WHERE d.dare_id = $1;`
	s, err := scanDareSummary(r.Pool.QueryRow(ctx, query, dareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dare %s: %w", dareID, err)
	}
	return s, nil
}

func (r *PgxDareRepository) ListDaresByCreator(ctx context.Context, userID string) ([]domain.DareSummary, error) {
	query := dareSummarySelect + ` WHERE d.created_by_user_id = $1 ORDER BY d.created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dares by creator: %w", err)
	}
	defer rows.Close()

	summaries := []domain.DareSummary{}
	for rows.Next() {
		s, err := scanDareSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dare row: %w", err)
		}
		summaries = append(summaries, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating dare rows: %w", rows.Err())
	}
	return summaries, nil
}

func (r *PgxDareRepository) JoinDare(ctx context.Context, dareID string, userID string) (*domain.Participant, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits.

	// Lock the dare row: the state check and the prize pool increment must
	// be consistent with respect to concurrent joins and status changes.
	m, err := scanDare(tx.QueryRow(ctx, `SELECT `+dareColumns+` FROM dares WHERE dare_id = $1 FOR UPDATE;`, dareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("dare not found")
		}
		return nil, fmt.Errorf("failed to load dare %s for join: %w", dareID, err)
	}
	dare := mapping.ToDomainDare(*m)

	now := time.Now()
	if !dare.AcceptsJoins(now) {
		if dare.Status != domain.DareOpen {
			return nil, apperrors.NewInvalidStateError("this dare is no longer accepting participants")
		}
		return nil, apperrors.NewInvalidStateError("this dare has already ended")
	}

	participant := domain.Participant{
		ParticipantID: uuid.NewString(),
		DareID:        dareID,
		UserID:        userID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	p := mapping.ToModelParticipant(participant)
	_, err = tx.Exec(ctx, `
		INSERT INTO dare_participants (participant_id, dare_id, user_id, votes_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, p.ParticipantID, p.DareID, p.UserID, p.VotesCount, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("you have already joined this dare")
		}
		return nil, fmt.Errorf("failed to insert participant for dare %s: %w", dareID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE dares SET prize_pool = prize_pool + $1, updated_at = $2 WHERE dare_id = $3;`,
		dare.EntryFee, now, dareID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update prize pool for dare %s: %w", dareID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *PgxDareRepository) FindParticipantByDareAndUser(ctx context.Context, dareID string, userID string) (*domain.Participant, error) {
	query := `
		SELECT participant_id, dare_id, user_id, submission_url, submission_caption, votes_count, created_at, updated_at
		FROM dare_participants
		WHERE dare_id = $1 AND user_id = $2;
	`
	m, err := scanParticipant(r.Pool.QueryRow(ctx, query, dareID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	p := mapping.ToDomainParticipant(*m)
	return &p, nil
}

func (r *PgxDareRepository) UpdateSubmission(ctx context.Context, dareID string, userID string, submissionURL string, submissionCaption string) error {
	// Last write wins; resubmission before the dare closes simply overwrites.
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE dare_participants
		SET submission_url = $1, submission_caption = $2, updated_at = $3
		WHERE dare_id = $4 AND user_id = $5;
	`, submissionURL, submissionCaption, time.Now(), dareID, userID)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDareRepository) SaveVote(ctx context.Context, participantID string, voterUserID string, isBoosted bool) (*domain.Vote, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits.

	// Lock the participant row so the votes_count increment cannot race.
	var ownerUserID string
	err = tx.QueryRow(ctx,
		`SELECT user_id FROM dare_participants WHERE participant_id = $1 FOR UPDATE;`,
		participantID,
	).Scan(&ownerUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("participant not found")
		}
		return nil, fmt.Errorf("failed to load participant %s for vote: %w", participantID, err)
	}

	if ownerUserID == voterUserID {
		return nil, apperrors.NewSelfVoteError("you cannot vote for yourself")
	}

	vote := domain.Vote{
		VoteID:            uuid.NewString(),
		DareParticipantID: participantID,
		VoterUserID:       voterUserID,
		IsBoostedVote:     isBoosted,
		CreatedAt:         time.Now(),
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO votes (vote_id, dare_participant_id, voter_user_id, is_boosted_vote, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`, vote.VoteID, vote.DareParticipantID, vote.VoterUserID, vote.IsBoostedVote, vote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("you have already voted for this submission")
		}
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE dare_participants SET votes_count = votes_count + 1, updated_at = $1 WHERE participant_id = $2;`,
		vote.CreatedAt, participantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to increment votes count: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *PgxDareRepository) ListParticipants(ctx context.Context, dareID string) ([]domain.ParticipantDetail, error) {
	// Leaderboard ordering: highest tally first, earlier joiners win ties.
	query := `
		SELECT dp.participant_id, dp.dare_id, dp.user_id, dp.submission_url, dp.submission_caption,
			dp.votes_count, dp.created_at, dp.updated_at,
			u.username, u.full_name, u.profile_pic_url
		FROM dare_participants dp
		JOIN users u ON dp.user_id = u.user_id
		WHERE dp.dare_id = $1
		ORDER BY dp.votes_count DESC, dp.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, dareID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	details := []domain.ParticipantDetail{}
	for rows.Next() {
		var m models.DareParticipant
		var d domain.ParticipantDetail
		err := rows.Scan(
			&m.ParticipantID,
			&m.DareID,
			&m.UserID,
			&m.SubmissionURL,
			&m.SubmissionCaption,
			&m.VotesCount,
			&m.CreatedAt,
			&m.UpdatedAt,
			&d.Username,
			&d.FullName,
			&d.ProfilePicURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		d.Participant = mapping.ToDomainParticipant(m)
		details = append(details, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", rows.Err())
	}
	return details, nil
}

func (r *PgxDareRepository) ListParticipationsByUser(ctx context.Context, userID string) ([]domain.ParticipationSummary, error) {
	query := `
		SELECT dp.participant_id, dp.dare_id, dp.user_id, dp.submission_url, dp.submission_caption,
			dp.votes_count, dp.created_at, dp.updated_at,
			d.title, d.description, d.status, d.end_time, c.name
		FROM dare_participants dp
		JOIN dares d ON dp.dare_id = d.dare_id
		LEFT JOIN categories c ON d.category_id = c.category_id
		WHERE dp.user_id = $1
		ORDER BY dp.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participations: %w", err)
	}
	defer rows.Close()

	summaries := []domain.ParticipationSummary{}
	for rows.Next() {
		var m models.DareParticipant
		var s domain.ParticipationSummary
		var status string
		err := rows.Scan(
			&m.ParticipantID,
			&m.DareID,
			&m.UserID,
			&m.SubmissionURL,
			&m.SubmissionCaption,
			&m.VotesCount,
			&m.CreatedAt,
			&m.UpdatedAt,
			&s.DareTitle,
			&s.DareDescription,
			&status,
			&s.DareEndTime,
			&s.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation row: %w", err)
		}
		s.Participant = mapping.ToDomainParticipant(m)
		s.DareStatus = domain.DareStatus(status)
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating participation rows: %w", rows.Err())
	}
	return summaries, nil
}
