package config

// DispatchConfig holds command dispatch configuration
type DispatchConfig struct {
	// What registering an already mapped notification does: overwrite, reject
	DuplicatePolicy string `mapstructure:"duplicate_policy" validate:"required,oneof=overwrite reject"`

	// Per-notification command throttling
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Maximum command executions per second per notification name
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
