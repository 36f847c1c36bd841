package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driven"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// IngestService adds documents to the corpus: chunk, persist, index.
type IngestService struct {
	docStore  driven.DocumentStore
	retriever driven.Retriever

	chunkSize int
	overlap   int
	now       func() time.Time
}

// IngestOption configures the ingest service.
type IngestOption func(*IngestService)

// WithChunking sets chunk size and overlap in characters.
func WithChunking(size, overlap int) IngestOption {
	return func(s *IngestService) {
		if size > 0 {
			s.chunkSize = size
		}
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// WithIngestClock overrides the time source. Useful for testing.
func WithIngestClock(now func() time.Time) IngestOption {
	return func(s *IngestService) {
		s.now = now
	}
}

// NewIngestService creates a new ingest service.
func NewIngestService(docStore driven.DocumentStore, retriever driven.Retriever, opts ...IngestOption) *IngestService {
	s := &IngestService{
		docStore:  docStore,
		retriever: retriever,
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}
	return s
}

// IngestText chunks the text, stores the document and chunks, and indexes
// the chunks for retrieval.
func (s *IngestService) IngestText(
	ctx context.Context, id, title, sourceType, text string,
) (*domain.Document, error) {
	id = NormalizeDocumentID(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty document text", domain.ErrInvalidInput)
	}
	if title == "" {
		title = id
	}
	if sourceType == "" {
		sourceType = "notes"
	}

	now := s.now().UTC()
	doc := &domain.Document{
		ID:         id,
		Title:      title,
		SourceType: sourceType,
		Topics:     []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing, err := s.docStore.GetDocument(ctx, id); err == nil {
		doc.CreatedAt = existing.CreatedAt
		doc.Topics = existing.Topics
	}

	chunks := s.chunkText(id, text)
	doc.NumChunks = len(chunks)

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	if err := s.docStore.SaveChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("saving chunks: %w", err)
	}
	if s.retriever != nil {
		// Chunk IDs change on every ingest, so the previous generation of
		// this document's chunks must leave the index first.
		if err := s.retriever.RemoveDocument(ctx, id); err != nil {
			return nil, fmt.Errorf("removing stale chunks: %w", err)
		}
		if err := s.retriever.IndexChunks(ctx, chunks); err != nil {
			return nil, fmt.Errorf("indexing chunks: %w", err)
		}
	}

	logger.Info("ingested document",
		zap.String("id", id),
		zap.Int("chunks", len(chunks)))

	return doc, nil
}

// ListDocuments returns all documents in the corpus.
func (s *IngestService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

// chunkText splits text into fixed-size chunks with overlap.
func (s *IngestService) chunkText(documentID, text string) []domain.Chunk {
	runes := []rune(text)
	step := s.chunkSize - s.overlap

	chunks := make([]domain.Chunk, 0, len(runes)/step+1)
	for start, pos := 0, 0; start < len(runes); start, pos = start+step, pos+1 {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, domain.Chunk{
			ID:         uuid.NewString(),
			DocumentID: documentID,
			Text:       string(runes[start:end]),
			Position:   pos,
		})
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// NormalizeDocumentID derives a stable document ID from a filename or
// free-form name: lowercase, extension stripped, spaces replaced.
func NormalizeDocumentID(name string) string {
	name = strings.TrimSpace(name)
	for _, ext := range []string{".pdf", ".md", ".txt"} {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}
