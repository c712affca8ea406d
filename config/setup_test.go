package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupConfigDefaults(t *testing.T) {
	conf := SetupConfig()

	assert.Equal(t, "localhost:3002", conf.BackendPublicURL)
	assert.Equal(t, int64(3002), conf.BackendPort)
	assert.Equal(t, "localhost:27017", conf.DbURL)
	assert.Equal(t, "lego_architect", conf.DbName)
}

func TestSetupConfigFromEnv(t *testing.T) {
	t.Setenv("ARCHITECT_BACKEND_PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "architect_test")
	t.Setenv("ARCHITECT_LOGGING_LEVEL", "DEBUG")

	conf := SetupConfig()

	assert.Equal(t, int64(8080), conf.BackendPort)
	assert.Equal(t, "mongodb://db:27017", conf.DbURL)
	assert.Equal(t, "architect_test", conf.DbName)
	assert.Equal(t, "debug", conf.LoggingLevel)
}

func TestSetupConfigRejectsBadValues(t *testing.T) {
	t.Setenv("ARCHITECT_BACKEND_PORT", "not-a-port")
	t.Setenv("ARCHITECT_LOGGING_LEVEL", "shouting")

	conf := SetupConfig()

	assert.Equal(t, int64(3002), conf.BackendPort)
	assert.Equal(t, "info", conf.LoggingLevel)
}

func TestValidateLoggingLevel(t *testing.T) {
	assert.True(t, validateLoggingLevel("debug"))
	assert.True(t, validateLoggingLevel("error"))
	assert.False(t, validateLoggingLevel("verbose"))
}
