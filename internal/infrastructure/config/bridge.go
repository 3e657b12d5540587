package config

// BridgeConfig holds the NATS relay configuration
type BridgeConfig struct {
	// Enabled registers the relay mediator
	Enabled bool `mapstructure:"enabled"`

	// NATS server URL
	URL string `mapstructure:"url" validate:"required,url"`

	// Subjects are "<prefix>.<notification name>"
	SubjectPrefix string `mapstructure:"subject_prefix" validate:"required,subject_token"`

	// Notification names to relay
	Interests []string `mapstructure:"interests" validate:"required_if=Enabled true,dive,subject_token"`
}
