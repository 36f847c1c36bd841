package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDocument(id string) *domain.Document {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Document{
		ID:         id,
		Title:      "Lecture on " + id,
		SourceType: "lecture",
		Topics:     []string{"retrieval"},
		NumChunks:  2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestStore_Migrates(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs no migration twice and succeeds.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := sampleDocument("lec1")
	require.NoError(t, docs.SaveDocument(ctx, doc))

	got, err := docs.GetDocument(ctx, "lec1")
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.SourceType, got.SourceType)
	assert.Equal(t, doc.Topics, got.Topics)
	assert.Equal(t, doc.NumChunks, got.NumChunks)
	assert.True(t, doc.CreatedAt.Equal(got.CreatedAt))
}

func TestDocumentStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.DocumentStore().GetDocument(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_SaveDocument_Upserts(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := sampleDocument("lec1")
	require.NoError(t, docs.SaveDocument(ctx, doc))

	doc.Title = "Updated title"
	doc.NumChunks = 5
	require.NoError(t, docs.SaveDocument(ctx, doc))

	got, err := docs.GetDocument(ctx, "lec1")
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, 5, got.NumChunks)

	count, err := docs.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDocumentStore_SaveChunks_ReplacesPerDocument(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, sampleDocument("lec1")))
	require.NoError(t, docs.SaveDocument(ctx, sampleDocument("lec2")))

	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "a", DocumentID: "lec1", Text: "first", Position: 0},
		{ID: "b", DocumentID: "lec1", Text: "second", Position: 1},
		{ID: "c", DocumentID: "lec2", Text: "other", Position: 0},
	}))

	// Re-saving lec1's chunks replaces them without touching lec2's.
	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "d", DocumentID: "lec1", Text: "replacement", Position: 0},
	}))

	chunks, err := docs.ListChunks(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "d", chunks[0].ID)
	assert.Equal(t, "c", chunks[1].ID)

	count, err := docs.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDocumentStore_ListDocuments_OrderedByCreation(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	older := sampleDocument("older")
	newer := sampleDocument("newer")
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	require.NoError(t, docs.SaveDocument(ctx, newer))
	require.NoError(t, docs.SaveDocument(ctx, older))

	got, err := docs.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "older", got[0].ID)
	assert.Equal(t, "newer", got[1].ID)
}

func TestQueryLogStore_AppendAndList(t *testing.T) {
	store := newTestStore(t)
	logs := store.QueryLogStore()
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, logs.AppendLog(ctx, &domain.QueryLog{
		ID: "l1", Timestamp: base, Question: "first?",
		Mode: domain.ModeBM25, UsedDocs: []string{"lec1"},
		Grounded: true, Answerability: domain.AnswerabilityHigh,
	}))
	require.NoError(t, logs.AppendLog(ctx, &domain.QueryLog{
		ID: "l2", Timestamp: base.Add(time.Minute), Question: "second?",
		Mode: domain.ModeHybrid, UsedDocs: []string{},
		Grounded: false, Answerability: domain.AnswerabilityLow,
	}))

	got, err := logs.ListLogs(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "l2", got[0].ID)
	assert.Equal(t, "l1", got[1].ID)

	assert.False(t, got[0].Grounded)
	assert.Empty(t, got[0].UsedDocs)
	assert.True(t, got[1].Grounded)
	assert.Equal(t, []string{"lec1"}, got[1].UsedDocs)
	assert.True(t, base.Equal(got[1].Timestamp))
}

func TestQueryLogStore_CountLogs(t *testing.T) {
	store := newTestStore(t)
	logs := store.QueryLogStore()
	ctx := context.Background()

	total, grounded, err := logs.CountLogs(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, grounded)

	for i, g := range []bool{true, true, false} {
		require.NoError(t, logs.AppendLog(ctx, &domain.QueryLog{
			ID:        string(rune('a' + i)),
			Timestamp: time.Now().UTC(),
			Question:  "q",
			Mode:      domain.ModeHybrid,
			UsedDocs:  []string{},
			Grounded:  g,
		}))
	}

	total, grounded, err = logs.CountLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, grounded)
}

func TestQueryLogStore_ModeCounts(t *testing.T) {
	store := newTestStore(t)
	logs := store.QueryLogStore()
	ctx := context.Background()

	counts, err := logs.ModeCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)

	modes := []string{domain.ModeBM25, domain.ModeBM25, domain.ModeHybrid}
	for i, m := range modes {
		require.NoError(t, logs.AppendLog(ctx, &domain.QueryLog{
			ID:        string(rune('a' + i)),
			Timestamp: time.Now().UTC(),
			Question:  "q",
			Mode:      m,
			UsedDocs:  []string{},
		}))
	}

	counts, err = logs.ModeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"bm25": 2, "hybrid": 1}, counts)
}
