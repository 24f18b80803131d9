package config

import (
	"fmt"
	"net/url"
)

func validateConfig(config *Config) error {
	if config.Discord.WebhookURL == "" {
		return fmt.Errorf("discord webhook URL is required: set DISCORD_WEBHOOK")
	}
	if err := ValidateEndpoint(config.Discord.WebhookURL); err != nil {
		return fmt.Errorf("invalid discord webhook URL: %w", err)
	}
	if config.ListenAddress == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	return nil
}

// ValidateEndpoint validates that an endpoint is properly formatted
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("endpoint must use http or https scheme")
	}

	if parsed.Host == "" {
		return fmt.Errorf("endpoint must include host")
	}

	return nil
}
