package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

func TestOverviewService_Overview(t *testing.T) {
	docStore := &MockDocumentStore{
		CountDocumentsFunc: func(_ context.Context) (int, error) { return 3, nil },
		CountChunksFunc:    func(_ context.Context) (int, error) { return 42, nil },
	}
	logStore := &MockQueryLogStore{
		CountLogsFunc: func(_ context.Context) (int, int, error) { return 10, 7, nil },
		ModeCountsFunc: func(_ context.Context) (map[string]int, error) {
			return map[string]int{"bm25": 4, "hybrid": 6}, nil
		},
	}

	svc := NewOverviewService(docStore, logStore)
	stats, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.NumDocuments)
	assert.Equal(t, 42, stats.NumChunks)
	assert.Equal(t, 10, stats.NumQuestions)
	assert.InDelta(t, 0.7, stats.GroundedRatio, 1e-9)
	assert.Equal(t, map[string]int{"bm25": 4, "hybrid": 6}, stats.ModeCounts)
}

func TestOverviewService_Overview_NoQuestions(t *testing.T) {
	logStore := &MockQueryLogStore{
		CountLogsFunc: func(_ context.Context) (int, int, error) { return 0, 0, nil },
	}

	svc := NewOverviewService(&MockDocumentStore{}, logStore)
	stats, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.NumQuestions)
	assert.Zero(t, stats.GroundedRatio)
}

func TestOverviewService_Overview_StoreError(t *testing.T) {
	docStore := &MockDocumentStore{
		CountDocumentsFunc: func(_ context.Context) (int, error) {
			return 0, errors.New("database locked")
		},
	}

	svc := NewOverviewService(docStore, &MockQueryLogStore{})
	stats, err := svc.Overview(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestLogService_List(t *testing.T) {
	entries := []domain.QueryLog{
		{ID: "b", Question: "newest"},
		{ID: "a", Question: "oldest"},
	}
	logStore := &MockQueryLogStore{
		ListLogsFunc: func(_ context.Context) ([]domain.QueryLog, error) {
			return entries, nil
		},
	}

	svc := NewLogService(logStore)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Backend order is passed through untouched.
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestLogService_List_Error(t *testing.T) {
	logStore := &MockQueryLogStore{
		ListLogsFunc: func(_ context.Context) ([]domain.QueryLog, error) {
			return nil, errors.New("boom")
		},
	}

	svc := NewLogService(logStore)
	got, err := svc.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
}
