package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dare represents a row in the dares table.
type Dare struct {
	DareID              string          `db:"dare_id"`
	Title               string          `db:"title"`
	Description         string          `db:"description"`
	CreatedByUserID     string          `db:"created_by_user_id"`
	EntryFee            decimal.Decimal `db:"entry_fee"`
	CategoryID          *string         `db:"category_id"`
	PrizePool           decimal.Decimal `db:"prize_pool"`
	StartTime           time.Time       `db:"start_time"`
	EndTime             time.Time       `db:"end_time"`
	Status              string          `db:"status"`
	SubmissionMediaType string          `db:"submission_media_type"`
	AuditFields
}

// DareParticipant represents a row in the dare_participants table.
type DareParticipant struct {
	ParticipantID     string  `db:"participant_id"`
	DareID            string  `db:"dare_id"`
	UserID            string  `db:"user_id"`
	SubmissionURL     *string `db:"submission_url"`
	SubmissionCaption *string `db:"submission_caption"`
	VotesCount        int     `db:"votes_count"`
	AuditFields
}

// Vote represents a row in the votes table.
type Vote struct {
	VoteID            string    `db:"vote_id"`
	DareParticipantID string    `db:"dare_participant_id"`
	VoterUserID       string    `db:"voter_user_id"`
	IsBoostedVote     bool      `db:"is_boosted_vote"`
	CreatedAt         time.Time `db:"created_at"`
}

// Category represents a row in the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
}
