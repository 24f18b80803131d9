package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformbuilds/mirador-relay/internal/models"
)

func TestBuildStatusMessage_CriticalFiring(t *testing.T) {
	groups := map[string][]models.AlertManagerAlert{
		"critical": {
			{
				Status:      "firing",
				Labels:      map[string]string{"alertname": "HighCPU", "severity": "critical"},
				Annotations: map[string]string{"description": "CPU too high"},
			},
		},
	}
	commonLabels := map[string]string{"prometheus": "monitoring/prometheus"}

	msg := BuildStatusMessage("firing", groups, commonLabels, "http://alertmanager:9093")
	require.NotNil(t, msg)

	assert.Equal(t, "🚨 Your infrastructure would like to inform you about some stuff! 🚨", msg.Content)
	require.Len(t, msg.Embeds, 1)

	embed := msg.Embeds[0]
	assert.Equal(t, "CRITICAL", embed.Title)
	assert.Equal(t, "You should take a look at these, like, right now.", embed.Description)
	assert.Equal(t, models.ColorRed, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "HighCPU", embed.Fields[0].Name)
	assert.Equal(t, "CPU too high", embed.Fields[0].Value)
	assert.Equal(t, "monitoring/prometheus", embed.Author.Name)
	assert.Equal(t, "http://alertmanager:9093", embed.Author.URL)
}

func TestBuildStatusMessage_SeverityFormatting(t *testing.T) {
	tests := []struct {
		severity    string
		color       int
		description string
	}{
		{"critical", models.ColorRed, "You should take a look at these, like, right now."},
		{"warning", models.ColorYellow, "These are probably issues."},
		{"info", models.ColorBlue, "These are not bad, but maybe you should take a look?"},
		{"page", models.ColorGray, "Unknown severity. Take a look at these"},
		{"Critical", models.ColorGray, "Unknown severity. Take a look at these"}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			groups := map[string][]models.AlertManagerAlert{
				tt.severity: {{Status: "firing", Labels: map[string]string{"severity": tt.severity}}},
			}
			msg := BuildStatusMessage("firing", groups, nil, "")
			require.NotNil(t, msg)
			require.Len(t, msg.Embeds, 1)
			assert.Equal(t, tt.color, msg.Embeds[0].Color)
			assert.Equal(t, tt.description, msg.Embeds[0].Description)
		})
	}
}

func TestBuildStatusMessage_FieldFallbacks(t *testing.T) {
	groups := map[string][]models.AlertManagerAlert{
		"warning": {
			{Annotations: map[string]string{"message": "only a message"}},
			{Annotations: map[string]string{}},
		},
	}

	msg := BuildStatusMessage("firing", groups, nil, "")
	require.NotNil(t, msg)
	require.Len(t, msg.Embeds, 1)
	fields := msg.Embeds[0].Fields
	require.Len(t, fields, 2)

	assert.Equal(t, noNameAlert, fields[0].Name)
	assert.Equal(t, "only a message", fields[0].Value)
	assert.Equal(t, noNameAlert, fields[1].Name)
	assert.Equal(t, "", fields[1].Value)
}

func TestBuildStatusMessage_Banners(t *testing.T) {
	groups := map[string][]models.AlertManagerAlert{
		"warning": {{Labels: map[string]string{"severity": "warning"}}},
	}

	firing := BuildStatusMessage("firing", groups, nil, "")
	require.NotNil(t, firing)
	assert.Contains(t, firing.Content, "Your infrastructure would like to inform you")

	resolved := BuildStatusMessage("resolved", groups, nil, "")
	require.NotNil(t, resolved)
	assert.Equal(t, "🎉 These issues have been resolved! 🎉", resolved.Content)

	odd := BuildStatusMessage("suppressed", groups, nil, "")
	require.NotNil(t, odd)
	assert.Equal(t, "Unknown status suppressed, please advise!", odd.Content)
}

func TestBuildStatusMessage_NilOnEmptyGroup(t *testing.T) {
	assert.Nil(t, BuildStatusMessage("firing", nil, nil, ""))
	assert.Nil(t, BuildStatusMessage("firing", map[string][]models.AlertManagerAlert{}, nil, ""))
}

func TestNormalizeExternalURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"untouched", "http://alertmanager:9093/path", "http://alertmanager:9093/path"},
		{"single-artifact", "http:///alertmanager.local", "http://alertmanager.local"},
		{"long-run", "http:////alertmanager.local", "http://alertmanager.local"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExternalURL(tt.input)
			assert.Equal(t, tt.want, got)
			// idempotent: a second pass changes nothing
			assert.Equal(t, got, NormalizeExternalURL(got))
		})
	}
}

func TestSeverityTitleUppercasing(t *testing.T) {
	groups := map[string][]models.AlertManagerAlert{
		"warning": {{Labels: map[string]string{"severity": "warning"}}},
	}
	msg := BuildStatusMessage("firing", groups, nil, "")
	require.NotNil(t, msg)
	assert.Equal(t, "WARNING", msg.Embeds[0].Title)
}
