package services

import (
	"fmt"
	"strings"

	"github.com/platformbuilds/mirador-relay/internal/models"
)

// Field name used when an alert carries no alertname label.
const noNameAlert = "No-name alert"

// BuildStatusMessage renders the Discord message for a single status group.
// Returns nil when the group yields no embeds; callers skip delivery for it.
func BuildStatusMessage(
	status string,
	alertsBySeverity map[string][]models.AlertManagerAlert,
	commonLabels map[string]string,
	externalURL string,
) *models.DiscordMessage {
	author := models.DiscordEmbedAuthor{
		Name: commonLabels["prometheus"],
		URL:  NormalizeExternalURL(externalURL),
	}

	embeds := make([]models.DiscordEmbed, 0, len(alertsBySeverity))
	for severity, alerts := range alertsBySeverity {
		fields := make([]models.DiscordEmbedField, 0, len(alerts))
		for _, alert := range alerts {
			name, ok := alert.Labels["alertname"]
			if !ok {
				name = noNameAlert
			}
			value, ok := alert.Annotations["description"]
			if !ok {
				value = alert.Annotations["message"]
			}
			fields = append(fields, models.DiscordEmbedField{Name: name, Value: value})
		}

		embeds = append(embeds, models.DiscordEmbed{
			Title:       strings.ToUpper(severity),
			Description: severityDescription(severity),
			Color:       severityColor(severity),
			Fields:      fields,
			Author:      author,
		})
	}

	if len(embeds) == 0 {
		return nil
	}

	return &models.DiscordMessage{
		Content: statusBanner(status),
		Embeds:  embeds,
	}
}

// NormalizeExternalURL collapses the "///" artifact some Alertmanager builds
// emit in externalURL. Runs to a fixed point so the result never contains a
// triple slash.
func NormalizeExternalURL(externalURL string) string {
	for strings.Contains(externalURL, "///") {
		externalURL = strings.ReplaceAll(externalURL, "///", "//")
	}
	return externalURL
}

// Severity matching is exact and case-sensitive, same as upstream emits it.
func severityDescription(severity string) string {
	switch severity {
	case "critical":
		return "You should take a look at these, like, right now."
	case "warning":
		return "These are probably issues."
	case "info":
		return "These are not bad, but maybe you should take a look?"
	default:
		return "Unknown severity. Take a look at these"
	}
}

func severityColor(severity string) int {
	switch severity {
	case "critical":
		return models.ColorRed
	case "warning":
		return models.ColorYellow
	case "info":
		return models.ColorBlue
	default:
		return models.ColorGray
	}
}

func statusBanner(status string) string {
	switch status {
	case "firing":
		return "🚨 Your infrastructure would like to inform you about some stuff! 🚨"
	case "resolved":
		return "🎉 These issues have been resolved! 🎉"
	default:
		return fmt.Sprintf("Unknown status %s, please advise!", status)
	}
}
