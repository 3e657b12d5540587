package config

import "time"

// HTTPConfig holds the HTTP server configuration for "serve"
type HTTPConfig struct {
	// Listen address, host:port
	Address string `mapstructure:"address" validate:"required,hostname_port"`

	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}
