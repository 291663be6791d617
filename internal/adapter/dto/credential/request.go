package credential

// SaveCredentialRequest represents the request to store an OpenAI API key
type SaveCredentialRequest struct {
	APIKey string `json:"api_key" validate:"max=512" example:"sk-..."`
}
