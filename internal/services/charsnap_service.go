package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"rickorty/internal/config"
	"rickorty/internal/models"
)

// ErrUpstreamUnavailable is returned when the CharSnap upstream cannot be reached
// or its response cannot be read.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// CharSnapService relays chat payloads to the CharSnap add endpoint
type CharSnapService struct {
	client   *http.Client
	endpoint string
	token    string
	metrics  *Metrics
}

// NewCharSnapService creates a new CharSnap relay. metrics may be nil.
func NewCharSnapService(cfg *config.Config, metrics *Metrics) *CharSnapService {
	return &CharSnapService{
		client: &http.Client{
			Timeout: cfg.CharSnapTimeout,
		},
		endpoint: cfg.CharSnapEndpoint,
		token:    cfg.CharSnapToken,
		metrics:  metrics,
	}
}

// Forward posts payload unchanged to the upstream and captures its response.
// Non-2xx upstream statuses are not errors; they are returned for relaying.
func (s *CharSnapService) Forward(ctx context.Context, payload []byte) (*models.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// An unset token still yields "Bearer " so the upstream decides how to reject it
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.RecordCharSnapError(time.Since(start).Seconds())
		log.Printf("❌ [CHARSNAP] Request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.metrics.RecordCharSnapError(time.Since(start).Seconds())
		log.Printf("❌ [CHARSNAP] Failed to read response: %v", err)
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	s.metrics.RecordCharSnapResponse(resp.StatusCode, time.Since(start).Seconds())
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("⚠️ [CHARSNAP] Upstream returned %d (%d bytes)", resp.StatusCode, len(body))
	}

	return &models.UpstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
