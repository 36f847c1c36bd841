package services

import (
	"context"
	"fmt"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driven"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
)

// Ensure OverviewService implements the interface.
var _ driving.OverviewService = (*OverviewService)(nil)

// OverviewService computes the aggregate summary behind the dashboard.
type OverviewService struct {
	docStore driven.DocumentStore
	logStore driven.QueryLogStore
}

// NewOverviewService creates a new overview service.
func NewOverviewService(docStore driven.DocumentStore, logStore driven.QueryLogStore) *OverviewService {
	return &OverviewService{
		docStore: docStore,
		logStore: logStore,
	}
}

// Overview returns the current summary statistics.
// The grounded ratio is 0 when no questions have been asked; it is never
// derived by dividing by a zero question count.
func (s *OverviewService) Overview(ctx context.Context) (*domain.SummaryStatistics, error) {
	numDocs, err := s.docStore.CountDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting documents: %w", err)
	}

	numChunks, err := s.docStore.CountChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting chunks: %w", err)
	}

	total, grounded, err := s.logStore.CountLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting logs: %w", err)
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(grounded) / float64(total)
	}

	modeCounts, err := s.logStore.ModeCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting modes: %w", err)
	}

	return &domain.SummaryStatistics{
		NumDocuments:  numDocs,
		NumChunks:     numChunks,
		NumQuestions:  total,
		GroundedRatio: ratio,
		ModeCounts:    modeCounts,
	}, nil
}

// Ensure LogService implements the interface.
var _ driving.LogService = (*LogService)(nil)

// LogService exposes the historical question log.
type LogService struct {
	logStore driven.QueryLogStore
}

// NewLogService creates a new log service.
func NewLogService(logStore driven.QueryLogStore) *LogService {
	return &LogService{logStore: logStore}
}

// List returns all query log entries, newest first.
func (s *LogService) List(ctx context.Context) ([]domain.QueryLog, error) {
	logs, err := s.logStore.ListLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	return logs, nil
}
