package driven

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// QueryLogStore persists the append-only question log.
// Backed by SQLite.
type QueryLogStore interface {
	// AppendLog stores one query log record.
	AppendLog(ctx context.Context, log *domain.QueryLog) error

	// ListLogs returns all log records, newest first.
	ListLogs(ctx context.Context) ([]domain.QueryLog, error)

	// CountLogs returns the total number of log records and how many of
	// them are grounded.
	CountLogs(ctx context.Context) (total int, grounded int, err error)

	// ModeCounts returns the number of log records per retrieval mode.
	ModeCounts(ctx context.Context) (map[string]int, error)
}
