package models

// ConfigPayload is the flat object returned by GET /api/config.
// Every field is always present; unset keys are empty strings.
type ConfigPayload struct {
	ChutesAPIKey          string `json:"chutesApiKey"`
	ChutesAPIEndpoint     string `json:"chutesApiEndpoint"`
	OpenRouterAPIKey      string `json:"openRouterApiKey"`
	OpenRouterAPIEndpoint string `json:"openRouterApiEndpoint"`
	GroqAPIKey            string `json:"groqApiKey"`
	GroqAPIEndpoint       string `json:"groqApiEndpoint"`
}

// NewConfigPayload flattens provider endpoints into the payload shape the game expects.
// Providers with unknown names are ignored.
func NewConfigPayload(providers []ProviderEndpoint) ConfigPayload {
	var payload ConfigPayload
	for _, p := range providers {
		switch p.Name {
		case ProviderChutes:
			payload.ChutesAPIKey = p.APIKey
			payload.ChutesAPIEndpoint = p.Endpoint
		case ProviderOpenRouter:
			payload.OpenRouterAPIKey = p.APIKey
			payload.OpenRouterAPIEndpoint = p.Endpoint
		case ProviderGroq:
			payload.GroqAPIKey = p.APIKey
			payload.GroqAPIEndpoint = p.Endpoint
		}
	}
	return payload
}
