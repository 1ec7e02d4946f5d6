package database

import (
	"fmt"
	"net/url"
)

// Config holds configuration for the database connection.
type Config struct {
	// Driver is sqlite or mysql.
	Driver   string `mapstructure:"driver" default:"sqlite" validate:"oneof=sqlite mysql"`
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	// Name is the schema for mysql and the file path (or ":memory:") for sqlite.
	Name string `mapstructure:"name" default:"inventory.db"`
	// TimeoutSeconds bounds connection setup, reads and writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns TimeoutSeconds, falling back to 30.
func (c Config) Timeout() int {
	if c.TimeoutSeconds <= 0 {
		return 30
	}
	return c.TimeoutSeconds
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.Driver == "sqlite" {
		return c.Name
	}
	// url.UserPassword escapes special characters in the password.
	userInfo := url.UserPassword(c.User, c.Password).String()
	t := c.Timeout()
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, c.Host, c.Port, c.Name, t, t, t)
}
