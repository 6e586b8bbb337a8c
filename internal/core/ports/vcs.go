package ports

import (
	"context"

	"go.trai.ch/uw/internal/core/domain"
)

// VersionControl inspects and updates working trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VersionControl interface {
	// Status reports whether path is a repository, whether it is dirty and which branch is checked out.
	Status(ctx context.Context, path string) (domain.RepoStatus, error)
	// Checkout switches path to branch.
	Checkout(ctx context.Context, path, branch string) error
	// PullFastForward pulls without creating merge commits.
	PullFastForward(ctx context.Context, path string) error
	// MainBranch returns the trunk branch name, "main" if it cannot be determined.
	MainBranch(ctx context.Context, path string) string
}
