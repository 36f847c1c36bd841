package driven

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// DocumentStore persists documents and chunks.
// Backed by SQLite.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks stores chunks for a document.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents ordered by creation time.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// ListChunks returns all chunks across all documents, ordered by
	// document and position. Used to rebuild the retrieval index on boot.
	ListChunks(ctx context.Context) ([]domain.Chunk, error)

	// CountDocuments returns the number of documents.
	CountDocuments(ctx context.Context) (int, error)

	// CountChunks returns the number of chunks.
	CountChunks(ctx context.Context) (int, error)
}
