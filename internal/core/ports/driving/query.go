package driving

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// QueryService answers questions against the corpus and records each call
// in the query log.
type QueryService interface {
	// Ask retrieves evidence for the question, builds a grounded answer or
	// a refusal, and appends one log record.
	Ask(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error)
}

// IngestService adds documents to the corpus.
type IngestService interface {
	// IngestText chunks the given text, stores document and chunks, and
	// indexes the chunks for retrieval. Re-ingesting an existing document
	// ID replaces its chunks.
	IngestText(ctx context.Context, id, title, sourceType, text string) (*domain.Document, error)

	// ListDocuments returns all documents in the corpus.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
