// Package git implements ports.VersionControl on top of the git command line.
package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
	"go.trai.ch/zerr"
)

// fallbackMainBranch is used when the trunk cannot be detected.
const fallbackMainBranch = "main"

// Client implements ports.VersionControl.
type Client struct {
	runner ports.CommandRunner
}

// NewClient creates a Client that runs git through runner.
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner}
}

// Status reports the state of the working tree at path.
// A path without a .git entry is reported as not being a repository.
func (c *Client) Status(ctx context.Context, path string) (domain.RepoStatus, error) {
	var status domain.RepoStatus

	// .git is a directory for clones and a file for worktrees and submodules.
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return status, nil
	}
	status.IsRepo = true

	res, err := c.git(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return status, zerr.With(zerr.Wrap(domain.ErrRepoStatusFailed, describe(res, err)), "path", path)
	}
	status.Branch = strings.TrimSpace(res.Stdout)

	// A detached HEAD is restored by commit id.
	if status.Branch == "HEAD" {
		res, err = c.git(ctx, path, "rev-parse", "HEAD")
		if err != nil {
			return status, zerr.With(zerr.Wrap(domain.ErrRepoStatusFailed, describe(res, err)), "path", path)
		}
		status.Branch = strings.TrimSpace(res.Stdout)
		status.Detached = true
	}
	status.IsMainBranch = !status.Detached && domain.IsMainBranchName(status.Branch)

	res, err = c.git(ctx, path, "status", "--porcelain")
	if err != nil {
		return status, zerr.With(zerr.Wrap(domain.ErrRepoStatusFailed, describe(res, err)), "path", path)
	}
	status.IsDirty = strings.TrimSpace(res.Stdout) != ""

	return status, nil
}

// Checkout switches the working tree to branch.
func (c *Client) Checkout(ctx context.Context, path, branch string) error {
	res, err := c.git(ctx, path, "checkout", branch)
	if err != nil {
		return zerr.With(zerr.Wrap(err, describe(res, err)), "branch", branch)
	}
	return nil
}

// PullFastForward pulls the current branch, refusing to create merge commits.
func (c *Client) PullFastForward(ctx context.Context, path string) error {
	res, err := c.git(ctx, path, "pull", "--ff-only")
	if err != nil {
		return zerr.Wrap(err, describe(res, err))
	}
	return nil
}

// MainBranch detects the trunk branch. It prefers the remote's HEAD, then a
// local main or master branch, and falls back to "main".
func (c *Client) MainBranch(ctx context.Context, path string) string {
	res, err := c.git(ctx, path, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err == nil {
		ref := strings.TrimSpace(res.Stdout)
		if i := strings.LastIndex(ref, "/"); i >= 0 && i < len(ref)-1 {
			return ref[i+1:]
		}
	}

	for _, candidate := range []string{"main", "master"} {
		if _, err := c.git(ctx, path, "rev-parse", "--verify", "--quiet", "refs/heads/"+candidate); err == nil {
			return candidate
		}
	}

	return fallbackMainBranch
}

func (c *Client) git(ctx context.Context, path string, args ...string) (domain.CommandResult, error) {
	return c.runner.Run(ctx, path, append([]string{"git"}, args...)...)
}

// describe picks the most useful text for an error message: stderr, then
// stdout, then the error itself.
func describe(res domain.CommandResult, err error) string {
	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(res.Stdout); msg != "" {
		return msg
	}
	if err != nil {
		return err.Error()
	}
	return "unknown error"
}
