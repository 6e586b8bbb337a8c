package domain

// RepoStatus describes a working tree.
type RepoStatus struct {
	IsRepo  bool
	IsDirty bool
	// Branch is the checked out branch, or the commit id when Detached.
	Branch       string
	IsMainBranch bool
	Detached     bool
}

// BranchLabel names the checkout for status lines.
func (s RepoStatus) BranchLabel() string {
	if !s.Detached {
		return s.Branch
	}
	short := s.Branch
	if len(short) > 7 {
		short = short[:7]
	}
	return "detached at " + short
}

// IsMainBranchName reports whether branch is a recognised trunk name.
// The match is exact and case-sensitive.
func IsMainBranchName(branch string) bool {
	return branch == "main" || branch == "master"
}

// CommandResult is the captured result of an external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
