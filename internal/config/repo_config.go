package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrRepoConfigNotFound = errors.New("repo config file not found")
	ErrRepoConfigParsing  = errors.New("repo config parsing failed")
)

// RepoOverrides is the per-repository override file. Pattern lists are
// appended to the configured ones; scalar fields replace them when set.
type RepoOverrides struct {
	Model            string   `yaml:"model"`
	CriticalPatterns []string `yaml:"critical_patterns"`
	SkipPatterns     []string `yaml:"skip_patterns"`
	RejectMarkers    []string `yaml:"reject_markers"`
	Extensions       []string `yaml:"extensions"`
}

// ApplyRepoOverrides merges a .commitgate.yml found at the repository root
// into cfg. A missing file returns ErrRepoConfigNotFound with cfg untouched,
// which callers treat as non-fatal.
func ApplyRepoOverrides(cfg *Config, repoRoot string) error {
	overridePath := filepath.Join(repoRoot, ".commitgate.yml")
	data, err := os.ReadFile(overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrRepoConfigNotFound
		}
		return fmt.Errorf("failed to read %s: %w", overridePath, err)
	}

	var o RepoOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("%w: %w", ErrRepoConfigParsing, err)
	}

	if o.Model != "" {
		cfg.Model = o.Model
	}
	cfg.CriticalPatterns = append(cfg.CriticalPatterns, o.CriticalPatterns...)
	cfg.SkipPatterns = append(cfg.SkipPatterns, o.SkipPatterns...)
	if len(o.RejectMarkers) > 0 {
		cfg.RejectMarkers = o.RejectMarkers
	}
	if len(o.Extensions) > 0 {
		cfg.Extensions = o.Extensions
	}
	return nil
}
