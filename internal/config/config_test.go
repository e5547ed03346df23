package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
dbname = "tyres"
user = "tyres"
password = "from-file"

[auth]
jwt_secret = "file-secret"

[omise]
secret_key = "skey_test_file"

[checkout]
cleanup_schedule = "@every 1m"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "from-file", cfg.Database.Password)
	assert.Equal(t, "@every 1m", cfg.Checkout.CleanupSchedule)
	assert.Equal(t, 3600, cfg.Checkout.StagedOrderTTL)
	assert.Equal(t, "GST", cfg.Tax.DefaultName)
	assert.True(t, decimal.NewFromInt(10).Equal(cfg.Tax.Percentage()))
	assert.Equal(t, 20, cfg.Webhook.ProcessingTimeout)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("OMISE_SECRET_KEY", "skey_test_env")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "skey_test_env", cfg.Omise.SecretKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaults()
		cfg.Database.DBName = "tyres"
		cfg.Auth.JWTSecret = "secret"
		cfg.Omise.SecretKey = "skey"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no db name", func(c *Config) { c.Database.DBName = "" }},
		{"no jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"no omise key", func(c *Config) { c.Omise.SecretKey = "" }},
		{"rabbit without url", func(c *Config) { c.RabbitMQ.Enabled = true }},
		{"twilio without creds", func(c *Config) { c.Twilio.Enabled = true }},
		{"zero ttl", func(c *Config) { c.Checkout.StagedOrderTTL = 0 }},
		{"bad tax", func(c *Config) { c.Tax.DefaultPercentage = "ten" }},
		{"negative tax", func(c *Config) { c.Tax.DefaultPercentage = "-1" }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
