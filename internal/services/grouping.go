package services

import (
	"github.com/platformbuilds/mirador-relay/internal/models"
)

// GroupAlerts partitions a notification batch into status -> severity -> alerts
// buckets. Alerts without a severity label default to "none", and "none"
// severity alerts are dropped outright: they contribute to no group. Within a
// bucket, alerts keep the order they arrived in; bucket keys themselves carry
// no ordering guarantee.
func GroupAlerts(alerts []models.AlertManagerAlert) map[string]map[string][]models.AlertManagerAlert {
	grouped := make(map[string]map[string][]models.AlertManagerAlert)

	for _, alert := range alerts {
		severity, ok := alert.Labels["severity"]
		if !ok {
			severity = "none"
		}
		if severity == "none" {
			continue
		}

		bySeverity, ok := grouped[alert.Status]
		if !ok {
			bySeverity = make(map[string][]models.AlertManagerAlert)
			grouped[alert.Status] = bySeverity
		}
		bySeverity[severity] = append(bySeverity[severity], alert)
	}

	return grouped
}
