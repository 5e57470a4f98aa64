package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnvFile points at a file that does not exist so tests are not affected
// by a stray .env in the package directory.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "yes", cfg.Shell.ConfirmToken)
	assert.Equal(t, 30, cfg.Shell.HeaderSpacing)
	assert.False(t, cfg.Shell.AllowDuplicateIDs)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := writeFile(t, "staffbook.yaml", `
log:
  level: debug
  file: /tmp/staffbook.log
shell:
  confirm_token: "y"
  header_spacing: 4
  allow_duplicate_ids: true
`)

	cfg, err := Load(path, noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/staffbook.log", cfg.Log.File)
	assert.Equal(t, "y", cfg.Shell.ConfirmToken)
	assert.Equal(t, 4, cfg.Shell.HeaderSpacing)
	assert.True(t, cfg.Shell.AllowDuplicateIDs)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "staffbook.yaml", `
shell:
  header_spacing: 2
`)

	cfg, err := Load(path, noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Shell.HeaderSpacing)
	assert.Equal(t, "yes", cfg.Shell.ConfirmToken)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := Load(path, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeFile(t, "staffbook.yaml", `
shell:
  confirm_tokn: "y"
`)

	_, err := Load(path, noEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirm_tokn")
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_EnvFileOverridesYAML(t *testing.T) {
	path := writeFile(t, "staffbook.yaml", `
shell:
  confirm_token: "y"
`)
	envFile := writeFile(t, ".env", `
STAFFBOOK_CONFIRM_TOKEN=ok
STAFFBOOK_HEADER_SPACING=10
`)

	cfg, err := Load(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, "ok", cfg.Shell.ConfirmToken)
	assert.Equal(t, 10, cfg.Shell.HeaderSpacing)
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	envFile := writeFile(t, ".env", `
STAFFBOOK_LOG_LEVEL=error
`)
	t.Setenv("STAFFBOOK_LOG_LEVEL", "info")
	t.Setenv("STAFFBOOK_ALLOW_DUPLICATE_IDS", "true")

	cfg, err := Load(writeFile(t, "staffbook.yaml", "log:\n  level: debug"), envFile)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Shell.AllowDuplicateIDs)
}

func TestLoad_BadEnvValues(t *testing.T) {
	t.Setenv("STAFFBOOK_HEADER_SPACING", "wide")
	_, err := Load(writeFile(t, "staffbook.yaml", "log:\n  level: warn"), noEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEADER_SPACING")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"uppercase level ok", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"empty token", func(c *Config) { c.Shell.ConfirmToken = "  " }, "confirm_token"},
		{"negative spacing", func(c *Config) { c.Shell.HeaderSpacing = -1 }, "header_spacing"},
		{"zero spacing ok", func(c *Config) { c.Shell.HeaderSpacing = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
