package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/vitkovskyi/commitgate/internal/analysis"
	"github.com/vitkovskyi/commitgate/internal/config"
	"github.com/vitkovskyi/commitgate/internal/core"
	"github.com/vitkovskyi/commitgate/internal/gitutil"
	"github.com/vitkovskyi/commitgate/internal/llm"
	"github.com/vitkovskyi/commitgate/internal/logger"
	"github.com/vitkovskyi/commitgate/internal/report"
	"github.com/vitkovskyi/commitgate/internal/storage"
)

// app bundles the wired pipeline for one invocation. Everything is
// constructor-injected from one Config value; there is no ambient state.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	changes    *gitutil.Changes
	client     *llm.Client
	scorer     *analysis.Scorer
	filter     *analysis.TrivialFilter
	classifier *analysis.Classifier
	fallback   *analysis.Analyzer
	recorder   *report.Recorder
	store      storage.Store
	cleanup    func()
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, nil)

	changes, err := gitutil.Open(".", log)
	if err != nil {
		return nil, err
	}

	if err := config.ApplyRepoOverrides(cfg, changes.Root()); err != nil && !errors.Is(err, config.ErrRepoConfigNotFound) {
		log.Warn("ignoring invalid repo overrides", "error", err)
	}

	prompts, err := llm.NewPromptManager()
	if err != nil {
		return nil, err
	}
	filter, err := analysis.NewTrivialFilter(cfg.SkipPatterns)
	if err != nil {
		return nil, err
	}
	classifier, err := analysis.NewClassifier(cfg.CriticalPatterns)
	if err != nil {
		return nil, err
	}

	db, dbCleanup, err := storage.Open(resolvePath(changes.Root(), cfg.DBPath))
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:        cfg,
		logger:     log,
		changes:    changes,
		client:     llm.NewClient(cfg, prompts, llm.NewVerdictParser(cfg.RejectMarkers), log),
		scorer:     analysis.NewScorer(cfg.ComplexityThreshold),
		filter:     filter,
		classifier: classifier,
		fallback:   analysis.NewAnalyzer(),
		recorder:   report.NewRecorder(resolvePath(changes.Root(), cfg.ReportDir), log),
		store:      storage.NewStore(db),
		cleanup:    dbCleanup,
	}, nil
}

// resolvePath anchors relative config paths at the repository root so hooks
// behave the same regardless of the directory they run from.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// persistRun saves the report and the history row. Persistence failures only
// warn; the gate outcome never depends on them.
func persistRun(ctx context.Context, a *app, mode string, files int, result core.AggregateResult) {
	runID := newRunID()
	if _, err := a.recorder.Save(runID, mode, result); err != nil {
		a.logger.Warn("failed to save review report", "error", err)
	}
	run := core.Run{ID: runID, Mode: mode, Files: files, Rejected: len(result.Rejected), ExitCode: result.ExitCode}
	if err := a.store.SaveRun(ctx, run, result.Verdicts); err != nil {
		a.logger.Warn("failed to record run history", "error", err)
	}
}

func newRunID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}
