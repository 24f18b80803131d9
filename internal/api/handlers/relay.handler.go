package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/mirador-relay/internal/models"
	"github.com/platformbuilds/mirador-relay/internal/services"
	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

type RelayHandler struct {
	discord *services.DiscordService
	logger  logger.Logger
}

func NewRelayHandler(discord *services.DiscordService, logger logger.Logger) *RelayHandler {
	return &RelayHandler{
		discord: discord,
		logger:  logger,
	}
}

// POST / - Alertmanager webhook entrypoint.
//
// Alerts are regrouped by status and severity; each non-empty status group
// becomes one Discord message. Deliveries run sequentially and the first
// failure aborts the request - groups already sent stay sent.
func (h *RelayHandler) Relay(c *gin.Context) {
	var msg models.AlertManagerMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.logger.Warn("Failed to parse Alertmanager payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	grouped := services.GroupAlerts(msg.Alerts)

	sent := 0
	for status, alertsBySeverity := range grouped {
		discordMsg := services.BuildStatusMessage(status, alertsBySeverity, msg.CommonLabels, msg.ExternalURL)
		if discordMsg == nil {
			h.logger.Debug("No alerts to send, skipping", "status", status)
			continue
		}

		if err := h.discord.Send(c.Request.Context(), status, discordMsg); err != nil {
			h.logger.Error("Could not send to Discord", "status", status, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send to Discord"})
			return
		}
		sent++
	}

	if sent > 0 {
		h.logger.Info("Dispatched alerts to Discord",
			"groups", sent,
			"receiver", msg.Receiver,
			"alerts", len(msg.Alerts),
		)
	}

	c.Status(http.StatusOK)
}
