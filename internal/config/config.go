// Package config loads the application configuration with the Viper library
// and exposes it as an explicit value threaded through every constructor.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable of the review pipeline. It is loaded once per
// invocation and treated as immutable for the run.
type Config struct {
	Endpoint    string  // base URL of the OpenAI-compatible scorer, e.g. http://localhost:8080/v1
	Model       string
	Temperature float32
	MaxTokens   int

	BatchMaxTokens int
	BatchSize      int
	BatchThreshold int // minimum changed-file count before batch mode applies

	ComplexityThreshold int

	ReviewTimeout time.Duration // single-file review call
	BatchTimeout  time.Duration // combined-diff review call

	CriticalPatterns []string
	SkipPatterns     []string
	RejectMarkers    []string // literal tokens whose presence marks a rejection
	Extensions       []string // eligible source-file extensions

	ReportDir string
	DBPath    string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from an optional .commitgate.yaml file, the
// environment (COMMITGATE_* variables), and built-in defaults, in that order
// of precedence. A missing config file is not an error: the built-in defaults
// cover every field.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".commitgate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("COMMITGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// A missing config file is never an error: defaults cover every field.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		Endpoint:            v.GetString("endpoint"),
		Model:               v.GetString("model"),
		Temperature:         float32(v.GetFloat64("temperature")),
		MaxTokens:           v.GetInt("max_tokens"),
		BatchMaxTokens:      v.GetInt("batch.max_tokens"),
		BatchSize:           v.GetInt("batch.size"),
		BatchThreshold:      v.GetInt("batch.threshold"),
		ComplexityThreshold: v.GetInt("complexity_threshold"),
		ReviewTimeout:       v.GetDuration("review_timeout"),
		BatchTimeout:        v.GetDuration("batch_timeout"),
		CriticalPatterns:    v.GetStringSlice("critical_patterns"),
		SkipPatterns:        v.GetStringSlice("skip_patterns"),
		RejectMarkers:       v.GetStringSlice("reject_markers"),
		Extensions:          v.GetStringSlice("extensions"),
		ReportDir:           v.GetString("report_dir"),
		DBPath:              v.GetString("db_path"),
		LogLevel:            parseLogLevel(v.GetString("log_level")),
		LogFormat:           v.GetString("log_format"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", "http://localhost:8080/v1")
	v.SetDefault("model", "gpt-4")
	v.SetDefault("temperature", 0.2)
	v.SetDefault("max_tokens", 1500)
	v.SetDefault("batch.max_tokens", 2000)
	v.SetDefault("batch.size", 5)
	v.SetDefault("batch.threshold", 10)
	v.SetDefault("complexity_threshold", 10)
	v.SetDefault("review_timeout", 30*time.Second)
	v.SetDefault("batch_timeout", 60*time.Second)
	v.SetDefault("critical_patterns", []string{
		`security|auth|encrypt|decrypt|password|token`,
		`sql|database|query|injection`,
		`async|await|task|thread|mutex|goroutine`,
		`memory|dispose|using|defer|gc`,
	})
	v.SetDefault("skip_patterns", []string{
		`^using\s+`,
		`^import\s+`,
		`^\s*(//|#).*$`,
		`^\s*\[.*\]\s*$`,
	})
	v.SetDefault("reject_markers", []string{"REJECT", "ВІДХИЛИТИ"})
	v.SetDefault("extensions", []string{".cs", ".go", ".js", ".ts", ".py", ".sql", ".razor", ".json"})
	v.SetDefault("report_dir", ".commitgate/reviews")
	v.SetDefault("db_path", ".commitgate/history.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
