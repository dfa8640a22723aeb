package domain

import "time"

// Participant is one user's enrollment in a specific dare. At most one
// participant row exists per (dare, user) pair. Submission fields stay nil
// until the participant submits; resubmission overwrites (last write wins).
type Participant struct {
	ParticipantID     string  `json:"participantID"` // Primary Key (UUID)
	DareID            string  `json:"dareID"`
	UserID            string  `json:"userID"`
	SubmissionURL     *string `json:"submissionURL,omitempty"`
	SubmissionCaption *string `json:"submissionCaption,omitempty"`
	VotesCount        int     `json:"votesCount"`
	AuditFields
}

// ParticipantDetail is a participant enriched with the owning user's public
// fields, used for leaderboard-style reads.
type ParticipantDetail struct {
	Participant
	Username      string `json:"username"`
	FullName      string `json:"fullName"`
	ProfilePicURL string `json:"profilePicURL"`
}

// ParticipationSummary is a participant row enriched with its dare's
// headline fields, used for a user's own participation listing.
type ParticipationSummary struct {
	Participant
	DareTitle       string     `json:"dareTitle"`
	DareDescription string     `json:"dareDescription"`
	DareStatus      DareStatus `json:"dareStatus"`
	DareEndTime     time.Time  `json:"dareEndTime"`
	CategoryName    *string    `json:"categoryName,omitempty"`
}

// Vote is one user's vote for one participant's submission. A voter may
// cast at most one vote per participant and never for their own submission.
type Vote struct {
	VoteID            string    `json:"voteID"` // Primary Key (UUID)
	DareParticipantID string    `json:"dareParticipantID"`
	VoterUserID       string    `json:"voterUserID"`
	IsBoostedVote     bool      `json:"isBoostedVote"`
	CreatedAt         time.Time `json:"createdAt"`
}
