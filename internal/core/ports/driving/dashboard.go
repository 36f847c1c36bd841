package driving

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// OverviewService provides the aggregate summary behind the dashboard's
// stat panels. One call per dashboard mount; the dashboard never polls.
type OverviewService interface {
	// Overview returns the current summary statistics.
	Overview(ctx context.Context) (*domain.SummaryStatistics, error)
}

// LogService provides the historical question log for the dashboard table.
type LogService interface {
	// List returns all query log entries in backend order (newest first).
	List(ctx context.Context) ([]domain.QueryLog, error)
}
