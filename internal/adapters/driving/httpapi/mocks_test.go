package httpapi

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// MockOverviewService implements driving.OverviewService for testing.
type MockOverviewService struct {
	OverviewFunc func(ctx context.Context) (*domain.SummaryStatistics, error)
}

func (m *MockOverviewService) Overview(ctx context.Context) (*domain.SummaryStatistics, error) {
	if m.OverviewFunc != nil {
		return m.OverviewFunc(ctx)
	}
	return &domain.SummaryStatistics{ModeCounts: map[string]int{}}, nil
}

// MockLogService implements driving.LogService for testing.
type MockLogService struct {
	ListFunc func(ctx context.Context) ([]domain.QueryLog, error)
}

func (m *MockLogService) List(ctx context.Context) ([]domain.QueryLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// MockQueryService implements driving.QueryService for testing.
type MockQueryService struct {
	AskFunc func(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error)
}

func (m *MockQueryService) Ask(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, req)
	}
	return &domain.QueryResult{Citations: []domain.Citation{}}, nil
}

// MockIngestService implements driving.IngestService for testing.
type MockIngestService struct {
	IngestTextFunc    func(ctx context.Context, id, title, sourceType, text string) (*domain.Document, error)
	ListDocumentsFunc func(ctx context.Context) ([]domain.Document, error)
}

func (m *MockIngestService) IngestText(
	ctx context.Context, id, title, sourceType, text string,
) (*domain.Document, error) {
	if m.IngestTextFunc != nil {
		return m.IngestTextFunc(ctx, id, title, sourceType, text)
	}
	return &domain.Document{ID: id, Title: title}, nil
}

func (m *MockIngestService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	if m.ListDocumentsFunc != nil {
		return m.ListDocumentsFunc(ctx)
	}
	return nil, nil
}
