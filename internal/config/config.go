package config

type Config struct {
	Environment   string `mapstructure:"environment" yaml:"environment"`
	ListenAddress string `mapstructure:"listen_address" yaml:"listen_address"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`

	Discord DiscordConfig `mapstructure:"discord" yaml:"discord"`
}

// DiscordConfig holds the single outbound destination. The webhook URL is read
// once at startup and treated as immutable for the process lifetime.
type DiscordConfig struct {
	WebhookURL string `mapstructure:"webhook_url" yaml:"webhook_url"`
	Timeout    int    `mapstructure:"timeout" yaml:"timeout"` // milliseconds
}
