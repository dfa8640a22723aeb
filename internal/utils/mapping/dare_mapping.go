package mapping

import (
	"github.com/dare2earn/d2e_backend/internal/core/domain"
	"github.com/dare2earn/d2e_backend/internal/models"
)

// ToModelDare converts a domain Dare to a model Dare
func ToModelDare(d domain.Dare) models.Dare {
	return models.Dare{
		DareID:              d.DareID,
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
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainDare converts a model Dare to a domain Dare
func ToDomainDare(m models.Dare) domain.Dare {
	return domain.Dare{
		DareID:              m.DareID,
		Title:               m.Title,
		Description:         m.Description,
		CreatedByUserID:     m.CreatedByUserID,
		EntryFee:            m.EntryFee,
		CategoryID:          m.CategoryID,
		PrizePool:           m.PrizePool,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		Status:              domain.DareStatus(m.Status),
		SubmissionMediaType: m.SubmissionMediaType,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainParticipant converts a model DareParticipant to a domain Participant
func ToDomainParticipant(m models.DareParticipant) domain.Participant {
	return domain.Participant{
		ParticipantID:     m.ParticipantID,
		DareID:            m.DareID,
		UserID:            m.UserID,
		SubmissionURL:     m.SubmissionURL,
		SubmissionCaption: m.SubmissionCaption,
		VotesCount:        m.VotesCount,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelParticipant converts a domain Participant to a model DareParticipant
func ToModelParticipant(d domain.Participant) models.DareParticipant {
	return models.DareParticipant{
		ParticipantID:     d.ParticipantID,
		DareID:            d.DareID,
		UserID:            d.UserID,
		SubmissionURL:     d.SubmissionURL,
		SubmissionCaption: d.SubmissionCaption,
		VotesCount:        d.VotesCount,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainVote converts a model Vote to a domain Vote
func ToDomainVote(m models.Vote) domain.Vote {
	return domain.Vote{
		VoteID:            m.VoteID,
		DareParticipantID: m.DareParticipantID,
		VoterUserID:       m.VoterUserID,
		IsBoostedVote:     m.IsBoostedVote,
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
