package scan

import "time"

// Config holds configuration for scan intake.
type Config struct {
	// KeyTimeoutMs discards a partial keystroke buffer after this much inactivity.
	KeyTimeoutMs int `mapstructure:"key_timeout_ms" default:"2000" validate:"gte=0"`
	// MaxLength caps the keystroke buffer.
	MaxLength int `mapstructure:"max_length" default:"128" validate:"gte=0"`
	// NotificationMs is how long a notification stays visible.
	NotificationMs int `mapstructure:"notification_ms" default:"3500" validate:"gte=0"`
}

// KeyTimeout returns the inactivity timeout as a duration.
func (c Config) KeyTimeout() time.Duration {
	return time.Duration(c.KeyTimeoutMs) * time.Millisecond
}

// NotificationTTL returns the notification lifetime as a duration.
func (c Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationMs) * time.Millisecond
}
