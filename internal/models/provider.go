package models

// Provider names used in the config payload.
const (
	ProviderChutes     = "chutes"
	ProviderOpenRouter = "openRouter"
	ProviderGroq       = "groq"
)

// ProviderEndpoint is a chat-completion provider as seen by the game client
type ProviderEndpoint struct {
	Name     string `json:"name"`
	APIKey   string `json:"api_key"` // Empty when the provider key is not configured
	Endpoint string `json:"endpoint"`
}

// Configured reports whether an API key is available for the provider
func (p ProviderEndpoint) Configured() bool {
	return p.APIKey != ""
}
