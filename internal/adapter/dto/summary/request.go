package summary

// CreateSummaryRequest represents the request to summarize a transcript
type CreateSummaryRequest struct {
	Transcript string `json:"transcript" example:"John: We exceeded Q4 targets by 15%. Sarah: Let's schedule a follow-up."`
	// APIKey overrides the stored credential for this call only
	APIKey string `json:"api_key,omitempty" validate:"max=512"`
}
