package services

import (
	"rickorty/internal/config"
	"rickorty/internal/models"
)

// ProviderService exposes the configured chat-completion providers
type ProviderService struct {
	cfg *config.Config
}

// NewProviderService creates a new provider service
func NewProviderService(cfg *config.Config) *ProviderService {
	return &ProviderService{cfg: cfg}
}

// GetAll returns the primary provider followed by the alternates
func (s *ProviderService) GetAll() []models.ProviderEndpoint {
	return []models.ProviderEndpoint{
		{Name: models.ProviderChutes, APIKey: s.cfg.ChutesAPIKey, Endpoint: config.ChutesAPIEndpoint},
		{Name: models.ProviderOpenRouter, APIKey: s.cfg.OpenRouterAPIKey, Endpoint: config.OpenRouterAPIEndpoint},
		{Name: models.ProviderGroq, APIKey: s.cfg.GroqAPIKey, Endpoint: config.GroqAPIEndpoint},
	}
}

// ConfigPayload builds the payload served at /api/config
func (s *ProviderService) ConfigPayload() models.ConfigPayload {
	return models.NewConfigPayload(s.GetAll())
}
