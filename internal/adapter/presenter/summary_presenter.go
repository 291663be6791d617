package presenter

import (
	credentialDTO "github.com/johnquangdev/meeting-notes/internal/adapter/dto/credential"
	summaryDTO "github.com/johnquangdev/meeting-notes/internal/adapter/dto/summary"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
)

// ToSummaryResponse converts a summarization result to SummaryResponse DTO
func ToSummaryResponse(r *summary.Result) *summaryDTO.SummaryResponse {
	if r == nil {
		return nil
	}

	return &summaryDTO.SummaryResponse{
		ID:               r.ID,
		Summary:          r.Summary,
		Overview:         ToOverviewResponse(r.Summary),
		Model:            r.Model,
		ProcessingTimeMs: r.Duration.Milliseconds(),
		Warnings:         r.Warnings,
	}
}

// ToOverviewResponse derives the meeting overview counts
func ToOverviewResponse(s *entities.MeetingSummary) summaryDTO.OverviewResponse {
	if s == nil {
		return summaryDTO.OverviewResponse{}
	}

	counts := s.CountByPriority()
	return summaryDTO.OverviewResponse{
		SpeakerCount:    len(s.Speakers),
		ActionItemCount: len(s.ActionItems),
		HighPriority:    counts[entities.PriorityHigh],
		MediumPriority:  counts[entities.PriorityMedium],
		LowPriority:     counts[entities.PriorityLow],
	}
}

// ToCredentialStatusResponse converts a credential status to its DTO
func ToCredentialStatusResponse(s *credential.Status, warning string) *credentialDTO.CredentialStatusResponse {
	if s == nil {
		return &credentialDTO.CredentialStatusResponse{Warning: warning}
	}
	return &credentialDTO.CredentialStatusResponse{
		Configured: s.Configured,
		MaskedKey:  s.Masked,
		Warning:    warning,
	}
}
