package dto

import (
	"time"

	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDareRequest is the payload for creating a new dare.
type CreateDareRequest struct {
	Title               string          `json:"title" binding:"required"`
	Description         string          `json:"description" binding:"required"`
	EntryFee            decimal.Decimal `json:"entry_fee"`
	CategoryID          *string         `json:"category_id"`
	StartTime           time.Time       `json:"start_time" binding:"required"`
	EndTime             time.Time       `json:"end_time" binding:"required"`
	SubmissionMediaType string          `json:"submission_media_type"`
}

// ListDaresParams defines query parameters for listing dares.
type ListDaresParams struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	Status     string `form:"status"`
	CategoryID string `form:"category_id"`
}

// Pagination is the paging metadata returned alongside listings.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// DareResponse is the public projection of a dare with its creator,
// category and participant aggregates.
type DareResponse struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	CreatedByUserID     string          `json:"created_by_user_id"`
	CreatorUsername     string          `json:"creator_username"`
	CreatorFullName     string          `json:"creator_full_name"`
	EntryFee            decimal.Decimal `json:"entry_fee"`
	CategoryID          *string         `json:"category_id,omitempty"`
	CategoryName        *string         `json:"category_name,omitempty"`
	PrizePool           decimal.Decimal `json:"prize_pool"`
	StartTime           time.Time       `json:"start_time"`
	EndTime             time.Time       `json:"end_time"`
	Status              string          `json:"status"`
	SubmissionMediaType string          `json:"submission_media_type"`
	ParticipantCount    int64           `json:"participant_count"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ToDareResponse converts a domain.DareSummary to its public projection.
func ToDareResponse(d domain.DareSummary) DareResponse {
	return DareResponse{
		ID:                  d.DareID,
		Title:               d.Title,
		Description:         d.Description,
		CreatedByUserID:     d.CreatedByUserID,
		CreatorUsername:     d.CreatorUsername,
		CreatorFullName:     d.CreatorFullName,
		EntryFee:            d.EntryFee,
		CategoryID:          d.CategoryID,
		CategoryName:        d.CategoryName,
		PrizePool:           d.PrizePool,
		StartTime:           d.StartTime,
		EndTime:             d.EndTime,
		Status:              string(d.Status),
		SubmissionMediaType: d.SubmissionMediaType,
		ParticipantCount:    d.ParticipantCount,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDareResponseFromDare converts a bare domain.Dare, used right after
// creation when no joined creator or category data is loaded yet.
func ToDareResponseFromDare(d domain.Dare) DareResponse {
	return DareResponse{
		ID:                  d.DareID,
		Title:               d.Title,
		Description:         d.Description,
		CreatedByUserID:     d.CreatedByUserID,
		EntryFee:            d.EntryFee,
		CategoryID:          d.CategoryID,
		PrizePool:           d.PrizePool,
		StartTime:           d.StartTime,
		EndTime:             d.EndTime,
		Status:              string(d.Status),
		SubmissionMediaType: d.SubmissionMediaType,
		CreatedAt:           d.CreatedAt,
	}
}

// ListDaresResponse wraps one page of dares with pagination metadata.
type ListDaresResponse struct {
	Dares      []DareResponse `json:"dares"`
	Pagination Pagination     `json:"pagination"`
}

// ParticipantResponse is the public projection of a dare participant.
type ParticipantResponse struct {
	ID                string    `json:"id"`
	DareID            string    `json:"dare_id"`
	UserID            string    `json:"user_id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	ProfilePicURL     string    `json:"profile_pic_url"`
	SubmissionURL     *string   `json:"submission_url,omitempty"`
	SubmissionCaption *string   `json:"submission_caption,omitempty"`
	VotesCount        int       `json:"votes_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToParticipantResponse converts a domain.ParticipantDetail to its public projection.
func ToParticipantResponse(p domain.ParticipantDetail) ParticipantResponse {
	return ParticipantResponse{
		ID:                p.ParticipantID,
		DareID:            p.DareID,
		UserID:            p.UserID,
		Username:          p.Username,
		FullName:          p.FullName,
		ProfilePicURL:     p.ProfilePicURL,
		SubmissionURL:     p.SubmissionURL,
		SubmissionCaption: p.SubmissionCaption,
		VotesCount:        p.VotesCount,
		CreatedAt:         p.CreatedAt,
	}
}

// ToParticipantResponseFromParticipant converts a bare domain.Participant,
// used right after a join when no user data is loaded yet.
func ToParticipantResponseFromParticipant(p domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:                p.ParticipantID,
		DareID:            p.DareID,
		UserID:            p.UserID,
		SubmissionURL:     p.SubmissionURL,
		SubmissionCaption: p.SubmissionCaption,
		VotesCount:        p.VotesCount,
		CreatedAt:         p.CreatedAt,
	}
}

// DareDetailResponse is the detail read: the dare plus its participants in
// ranking order.
type DareDetailResponse struct {
	Dare         DareResponse          `json:"dare"`
	Participants []ParticipantResponse `json:"participants"`
}

// SubmitRequest is the payload for uploading a submission to a joined dare.
type SubmitRequest struct {
	SubmissionURL     string `json:"submission_url" binding:"required"`
	SubmissionCaption string `json:"submission_caption"`
}

// VoteRequest is the payload for voting on a participant's submission.
type VoteRequest struct {
	IsBoostedVote bool `json:"is_boosted_vote"`
}

// ParticipationResponse is one entry of a user's own participation listing.
type ParticipationResponse struct {
	ID                string    `json:"id"`
	DareID            string    `json:"dare_id"`
	DareTitle         string    `json:"dare_title"`
	DareDescription   string    `json:"dare_description"`
	DareStatus        string    `json:"dare_status"`
	DareEndTime       time.Time `json:"end_time"`
	CategoryName      *string   `json:"category_name,omitempty"`
	SubmissionURL     *string   `json:"submission_url,omitempty"`
	SubmissionCaption *string   `json:"submission_caption,omitempty"`
	VotesCount        int       `json:"votes_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToParticipationResponse converts a domain.ParticipationSummary to its public projection.
func ToParticipationResponse(p domain.ParticipationSummary) ParticipationResponse {
	return ParticipationResponse{
		ID:                p.ParticipantID,
		DareID:            p.DareID,
		DareTitle:         p.DareTitle,
		DareDescription:   p.DareDescription,
		DareStatus:        string(p.DareStatus),
		DareEndTime:       p.DareEndTime,
		CategoryName:      p.CategoryName,
		SubmissionURL:     p.SubmissionURL,
		SubmissionCaption: p.SubmissionCaption,
		VotesCount:        p.VotesCount,
		CreatedAt:         p.CreatedAt,
	}
}
