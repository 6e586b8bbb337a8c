package domain

import "go.trai.ch/zerr"

// TaskState is the lifecycle state of a component update.
type TaskState string

const (
	// StatePending indicates the task has not started.
	StatePending TaskState = "Pending"
	// StateCheckingRepo indicates the task is inspecting the working tree.
	StateCheckingRepo TaskState = "CheckingRepo"
	// StateSkipped indicates the task left the repository untouched on purpose.
	StateSkipped TaskState = "Skipped"
	// StateDeterminingBranch indicates the task is reading the current branch.
	StateDeterminingBranch TaskState = "DeterminingBranch"
	// StateSwitchingBranch indicates the task is checking out the main branch.
	StateSwitchingBranch TaskState = "SwitchingBranch"
	// StatePulling indicates the task is pulling fast-forward-only.
	StatePulling TaskState = "Pulling"
	// StateUpdatingPackages indicates the task is running package managers.
	StateUpdatingPackages TaskState = "UpdatingPackages"
	// StateRestoringBranch indicates the task is checking out the original branch.
	StateRestoringBranch TaskState = "RestoringBranch"
	// StateSucceeded indicates the update completed.
	StateSucceeded TaskState = "Succeeded"
	// StateFailed indicates the update failed.
	StateFailed TaskState = "Failed"
)

// terminalRank is shared by every terminal state so that none can follow another.
const terminalRank = 100

var stateRank = map[TaskState]int{
	StatePending:           0,
	StateCheckingRepo:      1,
	StateDeterminingBranch: 2,
	StateSwitchingBranch:   3,
	StatePulling:           4,
	StateUpdatingPackages:  5,
	StateRestoringBranch:   6,
	StateSkipped:           terminalRank,
	StateSucceeded:         terminalRank,
	StateFailed:            terminalRank,
}

// IsTerminal reports whether no further transitions are possible.
func (s TaskState) IsTerminal() bool {
	return stateRank[s] == terminalRank
}

// ComponentUpdateTask updates exactly one (project, component) pair.
// A task is owned by the goroutine executing it.
type ComponentUpdateTask struct {
	Project string
	Kind    ComponentKind
	Path    string
	State   TaskState
}

// NewComponentUpdateTask creates a pending task.
func NewComponentUpdateTask(project string, kind ComponentKind, path string) *ComponentUpdateTask {
	return &ComponentUpdateTask{
		Project: project,
		Kind:    kind,
		Path:    path,
		State:   StatePending,
	}
}

// Label returns the component's display name.
func (t *ComponentUpdateTask) Label() string {
	return t.Kind.Label(t.Project)
}

// Advance moves the task to next. States only move forward and
// terminal states are final.
func (t *ComponentUpdateTask) Advance(next TaskState) error {
	cur, ok := stateRank[t.State]
	if !ok {
		cur = 0
	}
	want, ok := stateRank[next]
	if !ok || t.State.IsTerminal() || want <= cur {
		err := zerr.With(zerr.Wrap(ErrInvalidTransition, "cannot advance task"), "from", string(t.State))
		return zerr.With(err, "to", string(next))
	}
	t.State = next
	return nil
}
