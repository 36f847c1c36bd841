package driven

import (
	"context"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

// RetrievedChunk is one retrieval hit with its relevance score.
type RetrievedChunk struct {
	Chunk domain.Chunk
	Score float64
}

// Retriever indexes chunks and answers keyword queries over them.
// Backed by an in-memory Bleve index rebuilt from the store on boot.
type Retriever interface {
	// IndexChunks adds chunks to the index.
	IndexChunks(ctx context.Context, chunks []domain.Chunk) error

	// RemoveDocument drops every indexed chunk belonging to the document.
	// Removing an unknown document is not an error.
	RemoveDocument(ctx context.Context, documentID string) error

	// Search returns the top-k most relevant chunks for the query.
	// Mode selects the retrieval strategy (domain.Mode* constants).
	// Returns domain.ErrEmptyCorpus when nothing has been indexed.
	Search(ctx context.Context, query, mode string, topK int) ([]RetrievedChunk, error)

	// Count returns the number of indexed chunks.
	Count() uint64
}
