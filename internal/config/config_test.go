package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1", cfg.Endpoint)
	assert.Equal(t, "gpt-4", cfg.Model)
	assert.InDelta(t, 0.2, cfg.Temperature, 0.001)
	assert.Equal(t, 1500, cfg.MaxTokens)
	assert.Equal(t, 2000, cfg.BatchMaxTokens)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, 10, cfg.BatchThreshold)
	assert.Equal(t, 10, cfg.ComplexityThreshold)
	assert.Equal(t, 30*time.Second, cfg.ReviewTimeout)
	assert.Equal(t, 60*time.Second, cfg.BatchTimeout)
	assert.Contains(t, cfg.RejectMarkers, "REJECT")
	assert.Contains(t, cfg.Extensions, ".go")
	assert.Contains(t, cfg.Extensions, ".py")
	assert.NotEmpty(t, cfg.CriticalPatterns)
	assert.NotEmpty(t, cfg.SkipPatterns)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commitgate.yaml")
	content := `
endpoint: http://scorer.internal:9090/v1
model: gpt-4o
temperature: 0.5
max_tokens: 800
batch:
  size: 3
  threshold: 6
complexity_threshold: 4
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://scorer.internal:9090/v1", cfg.Endpoint)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.InDelta(t, 0.5, cfg.Temperature, 0.001)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Equal(t, 6, cfg.BatchThreshold)
	assert.Equal(t, 4, cfg.ComplexityThreshold)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)

	// Untouched fields keep their defaults.
	assert.Equal(t, 2000, cfg.BatchMaxTokens)
	assert.Len(t, cfg.Extensions, 8)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyRepoOverrides(t *testing.T) {
	dir := t.TempDir()
	override := `
model: local-reviewer
critical_patterns:
  - "grpc|proto"
skip_patterns:
  - "^\\s*@"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".commitgate.yml"), []byte(override), 0o644))

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	baseCritical := len(cfg.CriticalPatterns)

	require.NoError(t, ApplyRepoOverrides(cfg, dir))

	assert.Equal(t, "local-reviewer", cfg.Model)
	assert.Len(t, cfg.CriticalPatterns, baseCritical+1)
	assert.Contains(t, cfg.SkipPatterns, `^\s*@`)
}

func TestApplyRepoOverridesMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	err = ApplyRepoOverrides(cfg, t.TempDir())
	assert.ErrorIs(t, err, ErrRepoConfigNotFound)
}
