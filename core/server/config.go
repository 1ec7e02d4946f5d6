package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, including workbook uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"8" validate:"gte=0"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// BodyLimit returns BodyLimitMB in bytes, falling back to 8 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 8 << 20
	}
	return c.BodyLimitMB << 20
}
