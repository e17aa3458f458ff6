package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hubspot "github.com/jdziat/hubspot-go"
)

// clearEnv unsets the HUBSPOT_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{hubspot.EnvAccessToken, hubspot.EnvBaseURL, hubspot.EnvOAuth, hubspot.EnvQueryEncoding} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.hubapi.com", cfg.BaseURL)
	assert.Equal(t, "rfc3986", cfg.QueryEncoding)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.OAuth)
	assert.Empty(t, cfg.AccessToken)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MY_HUBSPOT_TOKEN", "pat-from-env")

	path := writeFile(t, t.TempDir(), ".hubspot.yaml", `
access_token: ${MY_HUBSPOT_TOKEN}
oauth: true
base_url: http://localhost:4010
query_encoding: legacy-form
omit_empty_query: true
timeout: 5s
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pat-from-env", cfg.AccessToken)
	assert.True(t, cfg.OAuth)
	assert.Equal(t, "http://localhost:4010", cfg.BaseURL)
	assert.Equal(t, "legacy-form", cfg.QueryEncoding)
	assert.True(t, cfg.OmitEmptyQuery)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), ".hubspot.yml", "access_token: plain\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.AccessToken)
	assert.Equal(t, "https://api.hubapi.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), ".hubspot.yaml", "access_token: file\nbase_url: http://file\n")
	t.Setenv(hubspot.EnvAccessToken, "env")
	t.Setenv(hubspot.EnvBaseURL, "http://env")
	t.Setenv(hubspot.EnvOAuth, "1")
	t.Setenv(hubspot.EnvQueryEncoding, "legacy-form")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.AccessToken)
	assert.Equal(t, "http://env", cfg.BaseURL)
	assert.True(t, cfg.OAuth)
	assert.Equal(t, "legacy-form", cfg.QueryEncoding)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, t.TempDir(), ".hubspot.yaml", "access_token: [unterminated\n")
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "failed to load config file")
	})

	t.Run("invalid oauth env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(hubspot.EnvOAuth, "maybe")
		_, err := LoadFile("")
		assert.ErrorContains(t, err, hubspot.EnvOAuth)
	})
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Empty(t, FindConfigFile(nested))

	want := writeFile(t, root, ".hubspot.yml", "")
	assert.Equal(t, want, FindConfigFile(nested))

	// .yaml wins over .yml in the same directory.
	preferred := writeFile(t, root, ".hubspot.yaml", "")
	assert.Equal(t, preferred, FindConfigFile(nested))

	// The nearest directory wins.
	closer := writeFile(t, nested, ".hubspot.yml", "")
	assert.Equal(t, closer, FindConfigFile(nested))
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".hubspot.yaml", "access_token: cwd-token\n")
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cwd-token", cfg.AccessToken)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TEST_VAR", "value")

	tests := []struct {
		input string
		want  string
	}{
		{"${TEST_VAR}", "value"},
		{"$TEST_VAR", "value"},
		{"", ""},
		{"plain", "plain"},
		{"pre-${TEST_VAR}-post", "pre-value-post"},
		{"${UNSET_HUBSPOT_TEST_VAR}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnvVar(tt.input))
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := &Config{
		AccessToken:    "tok",
		OAuth:          true,
		BaseURL:        "http://localhost",
		QueryEncoding:  "Legacy-Form",
		OmitEmptyQuery: true,
	}

	got, err := cfg.ClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "tok", got.Token)
	assert.True(t, got.OAuth)
	assert.Equal(t, "http://localhost", got.BaseURL)
	assert.Equal(t, hubspot.EncodingLegacyForm, got.QueryEncoding)
	assert.True(t, got.OmitEmptyQuery)

	cfg.QueryEncoding = "php"
	_, err = cfg.ClientConfig()
	assert.Error(t, err)
}
