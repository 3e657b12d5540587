package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Dispatch defaults
	if cfg.Dispatch.DuplicatePolicy == "" {
		cfg.Dispatch.DuplicatePolicy = "overwrite"
	}
	if cfg.Dispatch.RateLimit.Requests == 0 {
		cfg.Dispatch.RateLimit.Requests = 50
	}
	if cfg.Dispatch.RateLimit.Burst == 0 {
		cfg.Dispatch.RateLimit.Burst = 10
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "puremvc.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Bridge defaults
	if cfg.Bridge.URL == "" {
		cfg.Bridge.URL = "nats://127.0.0.1:4222"
	}
	if cfg.Bridge.SubjectPrefix == "" {
		cfg.Bridge.SubjectPrefix = "puremvc"
	}

	// HTTP defaults
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = "localhost:8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 10 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 10 * time.Second
	}
}
