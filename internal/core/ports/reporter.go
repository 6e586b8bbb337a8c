package ports

import "go.trai.ch/uw/internal/core/domain"

// Reporter renders operator-facing progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report writes one status line. It is safe for concurrent use.
	Report(event domain.Event)
	// Begin announces a batch before any task starts.
	Begin(jobs, targets int)
	// Summary writes the final summary block.
	Summary(stats domain.UpdateStats, outcomes []domain.Outcome)
}
