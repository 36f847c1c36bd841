package logs

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/messages"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/styles"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
)

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

func sampleEntries() []domain.QueryLog {
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return []domain.QueryLog{
		{
			ID: "l2", Timestamp: ts.Add(time.Minute), Question: "What is dense retrieval?",
			Mode: domain.ModeHybrid, UsedDocs: []string{},
			Grounded: false, Answerability: domain.AnswerabilityLow,
		},
		{
			ID: "l1", Timestamp: ts, Question: "What is BM25?",
			Mode: domain.ModeBM25, UsedDocs: []string{"doc1", "doc2"},
			Grounded: true, Answerability: domain.AnswerabilityHigh,
		},
	}
}

func loadedView(t *testing.T, entries []domain.QueryLog, loadErr error) *View {
	t.Helper()
	v := NewView(styles.DefaultStyles(), &MockLogService{
		ListFunc: func(_ context.Context) ([]domain.QueryLog, error) {
			return entries, loadErr
		},
	})
	cmd := v.Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.LogsLoaded)
	require.True(t, ok)
	v, _ = v.Update(msg)
	return v
}

func TestView_Init_FetchesLogs(t *testing.T) {
	v := loadedView(t, sampleEntries(), nil)

	require.Len(t, v.Entries(), 2)
	assert.False(t, v.Loading())
}

func TestView_PreservesBackendOrder(t *testing.T) {
	v := loadedView(t, sampleEntries(), nil)

	entries := v.Entries()
	assert.Equal(t, "l2", entries[0].ID)
	assert.Equal(t, "l1", entries[1].ID)
}

func TestView_RendersColumns(t *testing.T) {
	v := loadedView(t, sampleEntries(), nil)

	out := v.View()
	for _, header := range []string{"TIME", "QUESTION", "MODE", "DOCS", "GROUNDED", "ANSWERABILITY"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "HYBRID")
	assert.Contains(t, out, "BM25")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "LOW")
}

func TestView_EmptyState_SingleRow(t *testing.T) {
	v := loadedView(t, []domain.QueryLog{}, nil)

	out := v.View()
	assert.Contains(t, out, emptyStateMessage)
	// Headers still render above the single informational row.
	assert.Contains(t, out, "TIME")
}

func TestView_FetchFailure_DegradesToEmpty(t *testing.T) {
	v := loadedView(t, nil, errors.New("connection refused"))

	assert.Empty(t, v.Entries())
	out := v.View()
	assert.Contains(t, out, emptyStateMessage)
	assert.NotContains(t, out, "connection refused")
}

func TestDocsCell(t *testing.T) {
	assert.Equal(t, "—", DocsCell(nil))
	assert.Equal(t, "—", DocsCell([]string{}))
	assert.Equal(t, "doc1, doc2", DocsCell([]string{"doc1", "doc2"}))
	assert.Equal(t, "doc2, doc1", DocsCell([]string{"doc2", "doc1"}))
}

func TestView_GroundedBadge_Binary(t *testing.T) {
	grounded := loadedView(t, []domain.QueryLog{{
		ID: "l1", Timestamp: time.Now(), Question: "q", Mode: "bm25",
		UsedDocs: []string{"d"}, Grounded: true, Answerability: "HIGH",
	}}, nil)
	ungrounded := loadedView(t, []domain.QueryLog{{
		ID: "l2", Timestamp: time.Now(), Question: "q", Mode: "bm25",
		UsedDocs: []string{}, Grounded: false, Answerability: "LOW",
	}}, nil)

	assert.Contains(t, grounded.View(), "✓ yes")
	assert.NotContains(t, grounded.View(), "✗ no")
	assert.Contains(t, ungrounded.View(), "✗ no")
	assert.NotContains(t, ungrounded.View(), "✓ yes")
}

func TestView_TruncatesLongQuestions(t *testing.T) {
	long := "Why does the BM25 scoring function saturate term frequency and " +
		"how does that interact with document length normalisation in practice?"
	v := loadedView(t, []domain.QueryLog{{
		ID: "l1", Timestamp: time.Now(), Question: long, Mode: "bm25",
		UsedDocs: []string{}, Answerability: "HIGH",
	}}, nil)
	v.SetDimensions(100, 40)

	out := v.View()
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "...")
	// The underlying entry keeps the full text.
	assert.Equal(t, long, v.Entries()[0].Question)
}

func TestView_Scrolling(t *testing.T) {
	entries := make([]domain.QueryLog, 30)
	for i := range entries {
		entries[i] = domain.QueryLog{
			ID: string(rune('a' + i)), Timestamp: time.Now(),
			Question: "q", Mode: "bm25", UsedDocs: []string{},
		}
	}
	v := loadedView(t, entries, nil)
	v.SetDimensions(100, 24)

	assert.Equal(t, 0, v.ScrollOffset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, v.ScrollOffset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, v.ScrollOffset())

	// Cannot scroll above the top.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.ScrollOffset())
}

func TestView_StaleResultDropped(t *testing.T) {
	v := NewView(styles.DefaultStyles(), &MockLogService{})

	_ = v.Refresh()
	_ = v.Refresh()

	v, _ = v.Update(messages.LogsLoaded{Seq: 1, Logs: sampleEntries()})
	assert.Empty(t, v.Entries())

	v, _ = v.Update(messages.LogsLoaded{Seq: 2, Logs: sampleEntries()})
	assert.Len(t, v.Entries(), 2)
}

func TestView_RenderIdempotent(t *testing.T) {
	v := loadedView(t, sampleEntries(), nil)

	first := v.View()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, v.View())
	}
}

// groundedBadgeStart returns the rune column where the grounded badge
// begins in a rendered row.
func groundedBadgeStart(t *testing.T, row string) int {
	t.Helper()
	for i, r := range []rune(stripANSI(row)) {
		if r == '✓' || r == '✗' {
			return i
		}
	}
	t.Fatalf("no grounded badge in row %q", row)
	return -1
}

func TestView_RowAlignment_EmDashDocs(t *testing.T) {
	v := loadedView(t, sampleEntries(), nil)

	entries := v.Entries()
	require.Len(t, entries, 2)
	withDash := v.renderRow(&entries[0]) // UsedDocs empty, renders the em-dash
	withDocs := v.renderRow(&entries[1]) // UsedDocs "doc1, doc2"

	assert.Equal(t,
		groundedBadgeStart(t, withDocs),
		groundedBadgeStart(t, withDash),
		"multibyte docs cell must not shift the columns after it")
}

func TestPadCell(t *testing.T) {
	assert.Equal(t, "abc   ", padCell("abc", 6))
	assert.Equal(t, "—     ", padCell("—", 6))
	assert.Equal(t, 6, len([]rune(padCell("—", 6))))
	assert.Equal(t, "toolong", padCell("toolong", 4))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "toolong...", truncate("toolongstring", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
