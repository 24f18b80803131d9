package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/platformbuilds/mirador-relay/internal/config"
	"github.com/platformbuilds/mirador-relay/internal/metrics"
	"github.com/platformbuilds/mirador-relay/internal/models"
	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

// DiscordService delivers rendered messages to the configured Discord webhook
// and answers readiness probes against the same endpoint.
type DiscordService struct {
	webhookURL string
	client     *http.Client
	logger     logger.Logger
}

func NewDiscordService(cfg config.DiscordConfig, logger logger.Logger) *DiscordService {
	return &DiscordService{
		webhookURL: cfg.WebhookURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
		logger: logger,
	}
}

// Name identifies this dependency in readiness output.
func (s *DiscordService) Name() string { return "Discord" }

// Send posts one message to the webhook. Any 2xx response counts as accepted;
// a transport failure or a non-2xx response is an error. No retries.
func (s *DiscordService) Send(ctx context.Context, statusGroup string, msg *models.DiscordMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.DiscordRequestDuration.WithLabelValues("send").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(statusGroup, "false").Inc()
		return fmt.Errorf("discord webhook unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.NotificationsSent.WithLabelValues(statusGroup, "false").Inc()
		return fmt.Errorf("discord webhook rejected payload with status %d", resp.StatusCode)
	}

	metrics.NotificationsSent.WithLabelValues(statusGroup, "true").Inc()
	s.logger.Debug("Discord notification sent", "status_group", statusGroup, "embeds", len(msg.Embeds))
	return nil
}

// HealthCheck probes the webhook endpoint with a GET. Only an exact 200
// counts as reachable.
func (s *DiscordService) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.webhookURL, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.DiscordRequestDuration.WithLabelValues("healthcheck").Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("discord webhook unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}
	return nil
}
