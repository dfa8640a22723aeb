package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DareStatus indicates the lifecycle state of a dare.
// Open is the only state that accepts new participants; the other three
// are terminal and not re-enterable.
type DareStatus string

const (
	DareOpen      DareStatus = "open"
	DareClosed    DareStatus = "closed"
	DareCompleted DareStatus = "completed"
	DareCancelled DareStatus = "cancelled"
)

// Dare represents a user-created challenge with an entry fee, a time window
// and a prize pool accumulated from joiners' entry fees.
type Dare struct {
	DareID              string          `json:"dareID"` // Primary Key (UUID)
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	CreatedByUserID     string          `json:"createdByUserID"`
	EntryFee            decimal.Decimal `json:"entryFee"`
	CategoryID          *string         `json:"categoryID,omitempty"`
	PrizePool           decimal.Decimal `json:"prizePool"`
	StartTime           time.Time       `json:"startTime"`
	EndTime             time.Time       `json:"endTime"`
	Status              DareStatus      `json:"status"`
	SubmissionMediaType string          `json:"submissionMediaType"`
	AuditFields
}

// AcceptsJoins reports whether the dare can take a new participant at the
// given instant. Joins require status open and the end time not yet passed.
func (d *Dare) AcceptsJoins(now time.Time) bool {
	return d.Status == DareOpen && now.Before(d.EndTime)
}

// DareSummary is a dare enriched with the creator, category and participant
// aggregates needed by listing and detail reads.
type DareSummary struct {
	Dare
	CreatorUsername  string  `json:"creatorUsername"`
	CreatorFullName  string  `json:"creatorFullName"`
	CategoryName     *string `json:"categoryName,omitempty"`
	ParticipantCount int64   `json:"participantCount"`
}

// Category is a read-mostly taxonomy label for dares. Lifecycle is managed
// externally via seed data; the core treats it as a lookup.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}
