// Package llm dispatches review requests to the remote scorer and turns its
// free-form output into structured verdicts.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vitkovskyi/commitgate/internal/config"
	"github.com/vitkovskyi/commitgate/internal/core"
)

// ErrTransport marks any failure to obtain usable review text from the
// remote scorer: connection errors, timeouts, non-2xx statuses, and
// malformed or empty response bodies. Callers recover by substituting the
// static fallback analyzer; the client itself never retries.
var ErrTransport = errors.New("remote review transport failure")

// Character budgets bounding request size.
const (
	singleDiffBudget = 3000
	batchDiffBudget  = 8000
)

// Client sends one file's diff, or a combined multi-file diff, to the remote
// scorer and parses its verdict.
type Client struct {
	api     *openai.Client
	cfg     *config.Config
	prompts *PromptManager
	parser  *VerdictParser
	logger  *slog.Logger
}

// NewClient builds a Client against the configured OpenAI-compatible
// endpoint.
func NewClient(cfg *config.Config, prompts *PromptManager, parser *VerdictParser, logger *slog.Logger) *Client {
	apiCfg := openai.DefaultConfig("")
	apiCfg.BaseURL = cfg.Endpoint
	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		cfg:     cfg,
		prompts: prompts,
		parser:  parser,
		logger:  logger,
	}
}

// ReviewFile reviews a single file change. critical is the classifier's
// annotation and is carried onto the verdict unchanged.
func (c *Client) ReviewFile(ctx context.Context, change core.FileChange, critical bool) (core.Verdict, error) {
	system, err := c.prompts.Render(ReviewSystemPrompt, nil)
	if err != nil {
		return core.Verdict{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	user, err := c.prompts.Render(ReviewUserPrompt, map[string]string{
		"Path": change.Path,
		"Diff": truncate(change.Diff, singleDiffBudget),
	})
	if err != nil {
		return core.Verdict{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ReviewTimeout)
	defer cancel()

	text, err := c.complete(ctx, system, user, c.cfg.MaxTokens)
	if err != nil {
		return core.Verdict{}, err
	}

	res := c.parser.Parse(text)
	return core.Verdict{
		Paths:    []string{change.Path},
		Decision: res.Decision,
		Score:    res.Score,
		Issues:   res.Issues,
		Critical: critical,
		Source:   core.SourceRemote,
		Review:   text,
	}, nil
}

// ReviewBatch reviews a group of file changes as one combined-diff unit. The
// member diffs are concatenated under per-file section headers, preserving
// input order.
func (c *Client) ReviewBatch(ctx context.Context, changes []core.FileChange, priority string) (core.Verdict, error) {
	paths := make([]string, 0, len(changes))
	var combined strings.Builder
	for _, change := range changes {
		paths = append(paths, change.Path)
		fmt.Fprintf(&combined, "\n\n### %s\n%s", change.Path, change.Diff)
	}

	system, err := c.prompts.Render(BatchSystemPrompt, map[string]string{
		"Priority": strings.ToUpper(priority),
	})
	if err != nil {
		return core.Verdict{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	user, err := c.prompts.Render(BatchUserPrompt, map[string]any{
		"Count": len(changes),
		"Files": strings.Join(paths, ", "),
		"Diff":  truncate(combined.String(), batchDiffBudget),
	})
	if err != nil {
		return core.Verdict{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.BatchTimeout)
	defer cancel()

	text, err := c.complete(ctx, system, user, c.cfg.BatchMaxTokens)
	if err != nil {
		return core.Verdict{}, err
	}

	res := c.parser.Parse(text)
	return core.Verdict{
		Paths:    paths,
		Decision: res.Decision,
		Score:    res.Score,
		Issues:   res.Issues,
		Critical: res.Decision == core.DecisionReject,
		Source:   core.SourceRemote,
		Review:   text,
	}, nil
}

// complete issues one synchronous chat-completion call. Any error, empty
// choice list, or empty message content is a transport failure.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		c.logger.Warn("remote review call failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Warn("remote review returned no usable content")
		return "", fmt.Errorf("%w: empty or malformed response body", ErrTransport)
	}
	return resp.Choices[0].Message.Content, nil
}

func truncate(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	return s[:budget]
}
