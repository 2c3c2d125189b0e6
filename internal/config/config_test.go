package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvTableName, EnvCustomerIndex, EnvEventsQueueURL, EnvMetricsNS,
		EnvLogLevel, EnvRunLocal, EnvLocalAddr, EnvUseGinProxy,
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTableName, "service-orders")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "service-orders", cfg.TableName)
	assert.Equal(t, DefaultCustomerIndex, cfg.CustomerIndex)
	assert.Equal(t, DefaultMetricsNS, cfg.MetricsNS)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLocalAddr, cfg.LocalAddr)
	assert.Empty(t, cfg.EventsQueueURL)
	assert.False(t, cfg.RunLocal)
	assert.False(t, cfg.UseGinProxy)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTableName, "orders")
	t.Setenv(EnvCustomerIndex, "ByCustomer")
	t.Setenv(EnvEventsQueueURL, "https://sqs.us-east-1.amazonaws.com/123456789012/order-events")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvUseGinProxy, "TRUE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ByCustomer", cfg.CustomerIndex)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.UseGinProxy)
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/123456789012/order-events", cfg.EventsQueueURL)
}

func TestLoad_MissingTableName(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, "DYNAMODB_TABLE_NAME environment variable not set", err.Error())
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTableName, "orders")
	t.Setenv(EnvLogLevel, "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLogLevel)

	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvEventsQueueURL, "not a url")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvEventsQueueURL)
}

func TestLoad_DotEnvWhenLocal(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRunLocal, "true")
	// godotenv never overrides a variable that is already set, even to ""
	os.Unsetenv(EnvTableName)
	os.Unsetenv(EnvLocalAddr)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DYNAMODB_TABLE_NAME=local-orders\nLOCAL_ADDR=:9090\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.RunLocal)
	assert.Equal(t, "local-orders", cfg.TableName)
	assert.Equal(t, ":9090", cfg.LocalAddr)
}
