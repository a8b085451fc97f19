package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `env:
  env: test
  serviceName: identity
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
  maxRequestBodySize: 1MB
  timeouts:
    readTimeout: 10s
    readHeaderTimeout: 5s
    writeTimeout: 10s
    idleTimeout: 120s
auth:
  bcryptCost: 10
token:
  secret: from-yaml
  ttl: 30m
`

// writeTestConfig drops a config.yaml into a temp dir and chdirs there so the
// default "." search path picks it up.
func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FromYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "identity", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.HTTP.Timeouts.IdleTimeout)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "from-yaml", cfg.Token.Secret)
	assert.Equal(t, 30*time.Minute, cfg.Token.TTL)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	writeTestConfig(t)

	// TOKEN_SECRET lands on token.secret; the string port is weakly typed
	// into the int field.
	t.Setenv("TOKEN_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Token.Secret)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	// Untouched keys keep their yaml values.
	assert.Equal(t, 30*time.Minute, cfg.Token.TTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
}
