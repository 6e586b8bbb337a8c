package ports

import "go.trai.ch/uw/internal/core/domain"

// HistoryStore persists the report of the most recent run.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type HistoryStore interface {
	// Last returns the most recent report, or nil, nil if none exists.
	Last() (*domain.RunReport, error)
	// Save replaces the stored report.
	Save(report domain.RunReport) error
}
