package config

// JournalConfig holds notification journal configuration
type JournalConfig struct {
	// Enabled registers the journal mediator; it requires a database
	Enabled bool `mapstructure:"enabled"`

	// Notification names to record
	Interests []string `mapstructure:"interests" validate:"required_if=Enabled true,dive,required"`
}
