package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driven"
)

func populatedRetriever(hits []driven.RetrievedChunk) *MockRetriever {
	return &MockRetriever{
		CountFunc: func() uint64 { return 10 },
		SearchFunc: func(_ context.Context, _, _ string, _ int) ([]driven.RetrievedChunk, error) {
			return hits, nil
		},
	}
}

func strongHit(docID string, score float64) driven.RetrievedChunk {
	return driven.RetrievedChunk{
		Chunk: domain.Chunk{
			ID:         docID + ":0",
			DocumentID: docID,
			Text:       "BM25 ranks documents by term overlap with saturation.",
			Position:   0,
		},
		Score: score,
	}
}

func TestQueryService_Ask_EmptyQuestion(t *testing.T) {
	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, populatedRetriever(nil))

	result, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "   "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestQueryService_Ask_InvalidMode(t *testing.T) {
	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, populatedRetriever(nil))

	_, err := svc.Ask(context.Background(), domain.QueryRequest{
		Question: "what is bm25?",
		Mode:     "psychic",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQueryService_Ask_EmptyCorpusRefusal(t *testing.T) {
	var logged *domain.QueryLog
	logStore := &MockQueryLogStore{
		AppendLogFunc: func(_ context.Context, log *domain.QueryLog) error {
			logged = log
			return nil
		},
	}
	retriever := &MockRetriever{CountFunc: func() uint64 { return 0 }}

	svc := NewQueryService(&MockDocumentStore{}, logStore, retriever)
	result, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "anything?"})

	require.NoError(t, err)
	assert.True(t, result.Refused)
	assert.Equal(t, "Empty corpus", result.Reason)
	assert.Equal(t, domain.AnswerabilityLow, result.Answerability)
	assert.False(t, result.Grounded)

	// The refusal is still recorded in the question log.
	require.NotNil(t, logged)
	assert.Equal(t, "anything?", logged.Question)
	assert.False(t, logged.Grounded)
	assert.NotNil(t, logged.UsedDocs)
	assert.Empty(t, logged.UsedDocs)
}

func TestQueryService_Ask_GroundedAnswer(t *testing.T) {
	docStore := &MockDocumentStore{
		GetDocumentFunc: func(_ context.Context, id string) (*domain.Document, error) {
			return &domain.Document{ID: id, Title: "Lecture 1"}, nil
		},
	}
	var logged *domain.QueryLog
	logStore := &MockQueryLogStore{
		AppendLogFunc: func(_ context.Context, log *domain.QueryLog) error {
			logged = log
			return nil
		},
	}
	retriever := populatedRetriever([]driven.RetrievedChunk{
		strongHit("lecture_01", 0.9),
		strongHit("lecture_01", 0.8),
	})

	svc := NewQueryService(docStore, logStore, retriever)
	result, err := svc.Ask(context.Background(), domain.QueryRequest{
		Question: "What is BM25?",
		Mode:     domain.ModeBM25,
	})

	require.NoError(t, err)
	assert.False(t, result.Refused)
	assert.True(t, result.Grounded)
	assert.Equal(t, domain.AnswerabilityHigh, result.Answerability)
	require.Len(t, result.Citations, 2)
	assert.Equal(t, "Lecture 1", result.Citations[0].DocumentTitle)

	require.NotNil(t, logged)
	assert.True(t, logged.Grounded)
	assert.Equal(t, domain.ModeBM25, logged.Mode)
	// Cited documents are deduplicated in citation order.
	assert.Equal(t, []string{"lecture_01"}, logged.UsedDocs)
	assert.NotEmpty(t, logged.ID)
}

func TestQueryService_Ask_WeakEvidenceRefusal(t *testing.T) {
	retriever := populatedRetriever([]driven.RetrievedChunk{strongHit("doc", 0.05)})

	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, retriever)
	result, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "unrelated?"})

	require.NoError(t, err)
	assert.True(t, result.Refused)
	assert.Equal(t, domain.AnswerabilityLow, result.Answerability)
	assert.False(t, result.Grounded)
}

func TestQueryService_Ask_MediumAnswerability(t *testing.T) {
	retriever := populatedRetriever([]driven.RetrievedChunk{strongHit("doc", 0.4)})

	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, retriever)
	result, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "partly covered?"})

	require.NoError(t, err)
	assert.False(t, result.Refused)
	assert.Equal(t, domain.AnswerabilityMedium, result.Answerability)
	assert.True(t, result.Grounded)
}

func TestQueryService_Ask_NoHitsRefusal(t *testing.T) {
	retriever := populatedRetriever(nil)

	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, retriever)
	result, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "off topic?"})

	require.NoError(t, err)
	assert.True(t, result.Refused)
	assert.False(t, result.Grounded)
	assert.Empty(t, result.Citations)
}

func TestQueryService_Ask_CustomThresholds(t *testing.T) {
	retriever := populatedRetriever([]driven.RetrievedChunk{strongHit("doc", 0.4)})

	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, retriever,
		WithThresholds(0.01, 0.2))
	result, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "covered?"})

	require.NoError(t, err)
	assert.Equal(t, domain.AnswerabilityHigh, result.Answerability)
}

func TestQueryService_Ask_DefaultsToHybrid(t *testing.T) {
	var gotMode string
	retriever := &MockRetriever{
		CountFunc: func() uint64 { return 1 },
		SearchFunc: func(_ context.Context, _, mode string, _ int) ([]driven.RetrievedChunk, error) {
			gotMode = mode
			return nil, nil
		},
	}

	svc := NewQueryService(&MockDocumentStore{}, &MockQueryLogStore{}, retriever)
	_, err := svc.Ask(context.Background(), domain.QueryRequest{Question: "q?"})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeHybrid, gotMode)
}
