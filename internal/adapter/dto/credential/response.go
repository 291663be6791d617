package credential

// CredentialStatusResponse describes the stored API key without revealing it
type CredentialStatusResponse struct {
	Configured bool   `json:"configured"`
	MaskedKey  string `json:"masked_key,omitempty" example:"sk-…abcd"`
	Warning    string `json:"warning,omitempty"`
}
