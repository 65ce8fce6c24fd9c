// Package gitutil supplies the set of changed file paths and their textual
// diffs from the git repository enclosing the working directory.
package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/vitkovskyi/commitgate/internal/core"
)

// Changes reads changed paths and diff text for the review pipeline. Diff
// text comes from the git CLI; repository discovery and worktree status use
// go-git.
type Changes struct {
	repo     *git.Repository
	worktree *git.Worktree
	root     string
	logger   *slog.Logger
}

// Open locates the repository enclosing dir.
func Open(dir string, logger *slog.Logger) (*Changes, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not inside a git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	return &Changes{
		repo:     repo,
		worktree: wt,
		root:     wt.Filesystem.Root(),
		logger:   logger,
	}, nil
}

// Root returns the repository root directory.
func (c *Changes) Root() string {
	return c.root
}

// StagedDiff returns the staged diff for path as a FileChange. An untracked
// file has no diff yet, so its full content is synthesized as additions.
func (c *Changes) StagedDiff(ctx context.Context, path string) (core.FileChange, error) {
	out, err := c.git(ctx, "diff", "--cached", "--", path)
	if err != nil {
		return core.FileChange{}, fmt.Errorf("failed to get staged diff for %s: %w", path, err)
	}
	if strings.TrimSpace(out) != "" {
		return core.FileChange{Path: path, Diff: out}, nil
	}

	if !c.isUntracked(path) {
		return core.FileChange{Path: path}, nil
	}

	content, err := c.FileContent(path)
	if err != nil {
		return core.FileChange{}, fmt.Errorf("failed to read untracked file %s: %w", path, err)
	}
	return core.FileChange{Path: path, Diff: synthesizeDiff(path, content)}, nil
}

// ChangedFiles enumerates the paths for batch mode: the files between HEAD~1
// and HEAD, falling back to the staged set when there is no parent commit.
func (c *Changes) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := c.git(ctx, "diff", "--name-only", "HEAD~1", "HEAD")
	if err != nil {
		c.logger.Debug("HEAD~1 diff unavailable, falling back to staged files", "error", err)
		out, err = c.git(ctx, "diff", "--cached", "--name-only")
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate changed files: %w", err)
		}
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		if f := strings.TrimSpace(line); f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}

// FileContent reads the current worktree content of path.
func (c *Changes) FileContent(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.root, path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func (c *Changes) isUntracked(path string) bool {
	status, err := c.worktree.Status()
	if err != nil {
		c.logger.Warn("failed to get worktree status", "error", err)
		return false
	}
	return status.File(path).Worktree == git.Untracked
}

func (c *Changes) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.root
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// synthesizeDiff renders full file content as an all-additions diff so that
// untracked files flow through the same review path as tracked ones.
func synthesizeDiff(path, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New file: %s\n", path)
	for _, line := range strings.Split(content, "\n") {
		b.WriteString("+")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Eligible filters paths down to those with a configured source extension,
// preserving order.
func Eligible(paths, extensions []string) []string {
	var out []string
	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		for _, e := range extensions {
			if ext == e {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
