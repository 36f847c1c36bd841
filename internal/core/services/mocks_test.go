package services

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driven"
)

// MockDocumentStore implements driven.DocumentStore for testing.
type MockDocumentStore struct {
	SaveDocumentFunc   func(ctx context.Context, doc *domain.Document) error
	SaveChunksFunc     func(ctx context.Context, chunks []domain.Chunk) error
	GetDocumentFunc    func(ctx context.Context, id string) (*domain.Document, error)
	ListDocumentsFunc  func(ctx context.Context) ([]domain.Document, error)
	ListChunksFunc     func(ctx context.Context) ([]domain.Chunk, error)
	CountDocumentsFunc func(ctx context.Context) (int, error)
	CountChunksFunc    func(ctx context.Context) (int, error)
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if m.SaveDocumentFunc != nil {
		return m.SaveDocumentFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentStore) SaveChunks(ctx context.Context, chunks []domain.Chunk) error {
	if m.SaveChunksFunc != nil {
		return m.SaveChunksFunc(ctx, chunks)
	}
	return nil
}

func (m *MockDocumentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if m.GetDocumentFunc != nil {
		return m.GetDocumentFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockDocumentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	if m.ListDocumentsFunc != nil {
		return m.ListDocumentsFunc(ctx)
	}
	return nil, nil
}

func (m *MockDocumentStore) ListChunks(ctx context.Context) ([]domain.Chunk, error) {
	if m.ListChunksFunc != nil {
		return m.ListChunksFunc(ctx)
	}
	return nil, nil
}

func (m *MockDocumentStore) CountDocuments(ctx context.Context) (int, error) {
	if m.CountDocumentsFunc != nil {
		return m.CountDocumentsFunc(ctx)
	}
	return 0, nil
}

func (m *MockDocumentStore) CountChunks(ctx context.Context) (int, error) {
	if m.CountChunksFunc != nil {
		return m.CountChunksFunc(ctx)
	}
	return 0, nil
}

// MockQueryLogStore implements driven.QueryLogStore for testing.
type MockQueryLogStore struct {
	AppendLogFunc  func(ctx context.Context, log *domain.QueryLog) error
	ListLogsFunc   func(ctx context.Context) ([]domain.QueryLog, error)
	CountLogsFunc  func(ctx context.Context) (int, int, error)
	ModeCountsFunc func(ctx context.Context) (map[string]int, error)
}

func (m *MockQueryLogStore) AppendLog(ctx context.Context, log *domain.QueryLog) error {
	if m.AppendLogFunc != nil {
		return m.AppendLogFunc(ctx, log)
	}
	return nil
}

func (m *MockQueryLogStore) ListLogs(ctx context.Context) ([]domain.QueryLog, error) {
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc(ctx)
	}
	return nil, nil
}

func (m *MockQueryLogStore) CountLogs(ctx context.Context) (int, int, error) {
	if m.CountLogsFunc != nil {
		return m.CountLogsFunc(ctx)
	}
	return 0, 0, nil
}

func (m *MockQueryLogStore) ModeCounts(ctx context.Context) (map[string]int, error) {
	if m.ModeCountsFunc != nil {
		return m.ModeCountsFunc(ctx)
	}
	return map[string]int{}, nil
}

// MockRetriever implements driven.Retriever for testing.
type MockRetriever struct {
	IndexChunksFunc    func(ctx context.Context, chunks []domain.Chunk) error
	RemoveDocumentFunc func(ctx context.Context, documentID string) error
	SearchFunc         func(ctx context.Context, query, mode string, topK int) ([]driven.RetrievedChunk, error)
	CountFunc          func() uint64
}

func (m *MockRetriever) RemoveDocument(ctx context.Context, documentID string) error {
	if m.RemoveDocumentFunc != nil {
		return m.RemoveDocumentFunc(ctx, documentID)
	}
	return nil
}

func (m *MockRetriever) IndexChunks(ctx context.Context, chunks []domain.Chunk) error {
	if m.IndexChunksFunc != nil {
		return m.IndexChunksFunc(ctx, chunks)
	}
	return nil
}

func (m *MockRetriever) Search(
	ctx context.Context, query, mode string, topK int,
) ([]driven.RetrievedChunk, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, mode, topK)
	}
	return nil, nil
}

func (m *MockRetriever) Count() uint64 {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0
}
