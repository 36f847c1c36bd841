// Package bleve provides an in-memory keyword retrieval index over corpus
// chunks. The index is rebuilt from the SQLite store on boot.
package bleve

import (
	"context"
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driven"
)

// Ensure Index implements the Retriever port.
var _ driven.Retriever = (*Index)(nil)

// Index is a Bleve-backed chunk retriever.
type Index struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex

	// chunks caches indexed chunks by ID so hits can be hydrated without
	// a store round trip.
	chunks map[string]domain.Chunk
}

// NewIndex creates a new in-memory retrieval index.
func NewIndex() (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Index{
		bleveIndex: index,
		chunks:     make(map[string]domain.Chunk),
	}, nil
}

// buildIndexMapping creates the Bleve index mapping for chunks.
func buildIndexMapping() mapping.IndexMapping {
	chunkMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	chunkMapping.AddFieldMappingsAt("text", textFieldMapping)

	docFieldMapping := bleve.NewKeywordFieldMapping()
	docFieldMapping.IncludeInAll = false
	chunkMapping.AddFieldMappingsAt("document_id", docFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", chunkMapping)

	return indexMapping
}

// IndexChunks adds chunks to the index. Re-indexing a chunk ID replaces it.
func (i *Index) IndexChunks(ctx context.Context, chunks []domain.Chunk) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for _, chunk := range chunks {
		doc := map[string]any{
			"text":        chunk.Text,
			"document_id": chunk.DocumentID,
		}
		if err := batch.Index(chunk.ID, doc); err != nil {
			return fmt.Errorf("indexing chunk %s: %w", chunk.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("batch indexing chunks: %w", err)
	}

	for _, chunk := range chunks {
		i.chunks[chunk.ID] = chunk
	}
	return nil
}

// RemoveDocument drops every indexed chunk belonging to the document.
// Chunk IDs are regenerated on each ingest, so a re-ingest must remove the
// previous generation before indexing the replacement.
func (i *Index) RemoveDocument(ctx context.Context, documentID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	removed := make([]string, 0)
	for id, chunk := range i.chunks {
		if chunk.DocumentID == documentID {
			batch.Delete(id)
			removed = append(removed, id)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("removing chunks for document %s: %w", documentID, err)
	}
	for _, id := range removed {
		delete(i.chunks, id)
	}
	return nil
}

// Search returns the top-k most relevant chunks for the query.
// ModeBM25 uses exact term matching; ModeDense and ModeHybrid widen the
// match with fuzziness, standing in for the dense retriever the original
// design anticipated.
func (i *Index) Search(ctx context.Context, q, mode string, topK int) ([]driven.RetrievedChunk, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.chunks) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	if topK <= 0 {
		topK = 10
	}

	searchRequest := bleve.NewSearchRequestOptions(i.buildQuery(q, mode), topK, 0, false)
	results, err := i.bleveIndex.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	hits := make([]driven.RetrievedChunk, 0, len(results.Hits))
	for _, hit := range results.Hits {
		chunk, ok := i.chunks[hit.ID]
		if !ok {
			continue
		}
		hits = append(hits, driven.RetrievedChunk{
			Chunk: chunk,
			Score: hit.Score,
		})
	}
	return hits, nil
}

// buildQuery selects the Bleve query for the retrieval mode.
func (i *Index) buildQuery(q, mode string) query.Query {
	match := bleve.NewMatchQuery(q)
	match.SetField("text")

	switch mode {
	case domain.ModeBM25:
		return match
	default:
		fuzzy := bleve.NewMatchQuery(q)
		fuzzy.SetField("text")
		fuzzy.SetFuzziness(1)
		return bleve.NewDisjunctionQuery(match, fuzzy)
	}
}

// Count returns the number of indexed chunks.
func (i *Index) Count() uint64 {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0
	}
	return count
}
