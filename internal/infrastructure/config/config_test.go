package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/puremvc-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
logging:
  level: debug
  format: text
dispatch:
  duplicate_policy: reject
  rate_limit:
    enabled: true
    requests: 5
journal:
  enabled: true
  interests: [startup, shutdown]
http:
  address: "127.0.0.1:9090"
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "reject", cfg.Dispatch.DuplicatePolicy)
	assert.True(t, cfg.Dispatch.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.Dispatch.RateLimit.Requests)
	assert.Equal(t, 10, cfg.Dispatch.RateLimit.Burst)
	assert.Equal(t, []string{"startup", "shutdown"}, cfg.Journal.Interests)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Address)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\n")
	t.Setenv("PMVC_LOGGING_LEVEL", "warn")
	t.Setenv("NATS_URL", "nats://broker:4222")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "nats://broker:4222", cfg.Bridge.URL)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "dispatch:\n  duplicate_policy: merge\n")

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DuplicatePolicy")
}

func TestLoadConfig_JournalRequiresInterests(t *testing.T) {
	path := writeConfig(t, "journal:\n  enabled: true\n")

	_, err := config.LoadConfig(path)

	assert.Error(t, err)
}

func TestLoadConfig_FileOutputRequiresPath(t *testing.T) {
	path := writeConfig(t, "logging:\n  output: file\n")

	_, err := config.LoadConfig(path)

	assert.Error(t, err)
}

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "overwrite", cfg.Dispatch.DuplicatePolicy)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "puremvc", cfg.Bridge.SubjectPrefix)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.NoError(t, config.ValidateConfig(cfg))
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")

	cfg := config.LoadConfigOrDefault(path)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateConfig_BridgeSubjects(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		interests []string
		wantErr   bool
	}{
		{"plain names", "puremvc", []string{"deploy", "build.done"}, false},
		{"dotted prefix", "apps.puremvc", []string{"deploy"}, false},
		{"wildcard interest", "puremvc", []string{"deploy.*"}, true},
		{"tail wildcard prefix", "puremvc.>", []string{"deploy"}, true},
		{"space in interest", "puremvc", []string{"de ploy"}, true},
		{"trailing dot prefix", "puremvc.", []string{"deploy"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			config.SetDefaults(cfg)
			cfg.Bridge.Enabled = true
			cfg.Bridge.SubjectPrefix = tt.prefix
			cfg.Bridge.Interests = tt.interests

			err := config.ValidateConfig(cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "subject_token")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	path := writeConfig(t, "database:\n  type: postgres\n")

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Database.URL")
}

func TestLoadConfig_PostgresURLFromEnvironment(t *testing.T) {
	path := writeConfig(t, "database:\n  type: postgres\n  pool:\n    max_open: 4\n")
	t.Setenv("DATABASE_URL", "postgresql://puremvc:secret@db:5432/puremvc")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "postgresql://puremvc:secret@db:5432/puremvc", cfg.Database.URL)
	assert.Equal(t, 4, cfg.Database.Pool.MaxOpen)
	assert.Equal(t, 2, cfg.Database.Pool.MaxIdle)
	assert.False(t, cfg.Database.InMemory())
}
