package summary

import (
	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// SummaryResponse represents a generated meeting summary
type SummaryResponse struct {
	ID               uuid.UUID                `json:"id"`
	Summary          *entities.MeetingSummary `json:"summary"`
	Overview         OverviewResponse         `json:"overview"`
	Model            string                   `json:"model"`
	ProcessingTimeMs int64                    `json:"processing_time_ms"`
	Warnings         []string                 `json:"warnings,omitempty"`
}

// OverviewResponse holds counts derived from the summary
type OverviewResponse struct {
	SpeakerCount    int `json:"speaker_count"`
	ActionItemCount int `json:"action_item_count"`
	HighPriority    int `json:"high_priority"`
	MediumPriority  int `json:"medium_priority"`
	LowPriority     int `json:"low_priority"`
}
