package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/uw/internal/adapters/git"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fakeRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o750))
	return dir
}

func failed(stderr string) (domain.CommandResult, error) {
	return domain.CommandResult{ExitCode: 1, Stderr: stderr}, domain.ErrCommandFailed
}

func TestClient_Status_NotARepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	client := git.NewClient(mockRunner)

	status, err := client.Status(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.False(t, status.IsRepo)
}

func TestClient_Status(t *testing.T) {
	tests := []struct {
		name      string
		branch    string
		porcelain string
		wantMain  bool
		wantDirty bool
	}{
		{name: "Clean main", branch: "main\n", wantMain: true},
		{name: "Clean master", branch: "master\n", wantMain: true},
		{name: "Dirty feature", branch: "feature/x\n", porcelain: " M README.md\n", wantDirty: true},
		{name: "Untracked only", branch: "develop\n", porcelain: "?? new.txt\n", wantDirty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dir := fakeRepo(t)
			mockRunner := mocks.NewMockCommandRunner(ctrl)
			gomock.InOrder(
				mockRunner.EXPECT().Run(gomock.Any(), dir, "git", "rev-parse", "--abbrev-ref", "HEAD").
					Return(domain.CommandResult{Stdout: tt.branch}, nil),
				mockRunner.EXPECT().Run(gomock.Any(), dir, "git", "status", "--porcelain").
					Return(domain.CommandResult{Stdout: tt.porcelain}, nil),
			)

			status, err := git.NewClient(mockRunner).Status(context.Background(), dir)
			require.NoError(t, err)

			assert.True(t, status.IsRepo)
			assert.Equal(t, tt.wantMain, status.IsMainBranch)
			assert.Equal(t, tt.wantDirty, status.IsDirty)
		})
	}
}

func TestClient_Status_DetachedHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := fakeRepo(t)
	sha := "0123456789abcdef0123456789abcdef01234567"
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	gomock.InOrder(
		mockRunner.EXPECT().Run(gomock.Any(), dir, "git", "rev-parse", "--abbrev-ref", "HEAD").
			Return(domain.CommandResult{Stdout: "HEAD\n"}, nil),
		mockRunner.EXPECT().Run(gomock.Any(), dir, "git", "rev-parse", "HEAD").
			Return(domain.CommandResult{Stdout: sha + "\n"}, nil),
		mockRunner.EXPECT().Run(gomock.Any(), dir, "git", "status", "--porcelain").
			Return(domain.CommandResult{}, nil),
	)

	status, err := git.NewClient(mockRunner).Status(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, status.Detached)
	assert.False(t, status.IsMainBranch)
	assert.Equal(t, sha, status.Branch)
	assert.Equal(t, "detached at 0123456", status.BranchLabel())
}

func TestClient_Status_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := fakeRepo(t)
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), dir, "git", "rev-parse", "--abbrev-ref", "HEAD").
		Return(failed("fatal: not a git repository"))

	_, err := git.NewClient(mockRunner).Status(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRepoStatusFailed))
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestClient_Checkout_SurfacesStderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), "/repo", "git", "checkout", "main").
		Return(failed("error: pathspec 'main' did not match\n"))

	err := git.NewClient(mockRunner).Checkout(context.Background(), "/repo", "main")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pathspec 'main' did not match")
}

func TestClient_PullFastForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any(), "/repo", "git", "pull", "--ff-only").
		Return(domain.CommandResult{Stdout: "Already up to date.\n"}, nil)

	require.NoError(t, git.NewClient(mockRunner).PullFastForward(context.Background(), "/repo"))
}

func TestClient_MainBranch(t *testing.T) {
	t.Run("Remote HEAD", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRunner := mocks.NewMockCommandRunner(ctrl)
		mockRunner.EXPECT().Run(gomock.Any(), "/repo", "git", "symbolic-ref", "refs/remotes/origin/HEAD").
			Return(domain.CommandResult{Stdout: "refs/remotes/origin/trunk\n"}, nil)

		assert.Equal(t, "trunk", git.NewClient(mockRunner).MainBranch(context.Background(), "/repo"))
	})

	t.Run("Local master", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRunner := mocks.NewMockCommandRunner(ctrl)
		mockRunner.EXPECT().Run(gomock.Any(), "/repo", "git", "symbolic-ref", "refs/remotes/origin/HEAD").
			Return(failed("fatal: ref refs/remotes/origin/HEAD is not a symbolic ref"))
		mockRunner.EXPECT().Run(gomock.Any(), "/repo", "git", "rev-parse", "--verify", "--quiet", "refs/heads/main").
			Return(failed(""))
		mockRunner.EXPECT().Run(gomock.Any(), "/repo", "git", "rev-parse", "--verify", "--quiet", "refs/heads/master").
			Return(domain.CommandResult{Stdout: "abc123\n"}, nil)

		assert.Equal(t, "master", git.NewClient(mockRunner).MainBranch(context.Background(), "/repo"))
	})

	t.Run("Fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRunner := mocks.NewMockCommandRunner(ctrl)
		mockRunner.EXPECT().Run(gomock.Any(), "/repo", gomock.Any()).Return(failed("")).Times(3)

		assert.Equal(t, "main", git.NewClient(mockRunner).MainBranch(context.Background(), "/repo"))
	})
}
