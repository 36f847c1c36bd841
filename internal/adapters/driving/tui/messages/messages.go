// Package messages defines Bubbletea message types for the dashboard TUI.
// Messages represent events flowing through the Elm architecture.
package messages

import (
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// OverviewLoaded carries the result of a summary fetch back to the
// overview panel. On failure Stats is nil and Err is set; the panel
// degrades to its placeholder state rather than surfacing the error.
type OverviewLoaded struct {
	// Seq identifies which fetch produced this result. Results from a
	// superseded fetch are discarded by the receiving view.
	Seq int

	Stats *domain.SummaryStatistics
	Err   error
}

// LogsLoaded carries the result of a question log fetch back to the
// log table. On failure Logs is nil and Err is set; the table degrades
// to its empty state.
type LogsLoaded struct {
	// Seq identifies which fetch produced this result.
	Seq int

	Logs []domain.QueryLog
	Err  error
}
