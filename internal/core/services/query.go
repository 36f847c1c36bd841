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

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// DefaultTopK is the number of chunks retrieved per question when the
// request does not specify one.
const DefaultTopK = 5

// snippetLength bounds citation snippets.
const snippetLength = 350

// QueryService answers questions from retrieved course material and logs
// every call for the dashboard.
type QueryService struct {
	docStore  driven.DocumentStore
	logStore  driven.QueryLogStore
	retriever driven.Retriever

	// weakScore and strongScore classify answerability from the best
	// retrieval score: below weakScore the service refuses, above
	// strongScore the evidence is considered strong.
	weakScore   float64
	strongScore float64

	now func() time.Time
}

// QueryOption configures the query service.
type QueryOption func(*QueryService)

// WithThresholds sets the answerability score thresholds.
func WithThresholds(weak, strong float64) QueryOption {
	return func(s *QueryService) {
		if weak > 0 {
			s.weakScore = weak
		}
		if strong > weak {
			s.strongScore = strong
		}
	}
}

// WithClock overrides the time source. Useful for testing.
func WithClock(now func() time.Time) QueryOption {
	return func(s *QueryService) {
		s.now = now
	}
}

// NewQueryService creates a new query service.
func NewQueryService(
	docStore driven.DocumentStore,
	logStore driven.QueryLogStore,
	retriever driven.Retriever,
	opts ...QueryOption,
) *QueryService {
	s := &QueryService{
		docStore:    docStore,
		logStore:    logStore,
		retriever:   retriever,
		weakScore:   0.1,
		strongScore: 0.75,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask retrieves evidence for the question, builds a grounded answer or a
// refusal, and appends one log record either way.
func (s *QueryService) Ask(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	totalStart := time.Now()

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}
	if s.retriever == nil {
		return nil, domain.ErrRetrieverUnavailable
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ModeHybrid
	}
	if !domain.ValidMode(mode) {
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, mode)
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	if s.retriever.Count() == 0 {
		result := &domain.QueryResult{
			Answer: "No documents have been ingested yet. Add course material " +
				"with 'raglab ingest' before asking questions.",
			Answerability: domain.AnswerabilityLow,
			Refused:       true,
			Reason:        "Empty corpus",
			Citations:     []domain.Citation{},
		}
		s.logQuery(ctx, question, mode, nil, false, result.Answerability)
		return result, nil
	}

	retrievalStart := time.Now()
	hits, err := s.retriever.Search(ctx, question, mode, topK)
	if err != nil {
		return nil, fmt.Errorf("retrieving chunks: %w", err)
	}
	retrievalMS := float64(time.Since(retrievalStart).Microseconds()) / 1000.0

	citations, usedDocs := s.buildCitations(ctx, hits)
	grounded := len(citations) > 0

	var maxScore float64
	for _, c := range citations {
		if c.Score > maxScore {
			maxScore = c.Score
		}
	}

	answerability := domain.AnswerabilityHigh
	refused := false
	reason := ""
	switch {
	case !grounded:
		answerability = domain.AnswerabilityLow
		refused = true
		reason = "No supporting chunks found in the course corpus."
	case maxScore < s.weakScore:
		answerability = domain.AnswerabilityLow
		refused = true
		reason = "Retrieved evidence was too weak to confidently answer."
	case maxScore < s.strongScore:
		answerability = domain.AnswerabilityMedium
	}

	var answer string
	if refused {
		answer = "I cannot confidently answer this from the course corpus. " +
			"The retrieved evidence is either empty or too weak."
	} else {
		answer = buildGroundedAnswer(question, citations)
	}

	result := &domain.QueryResult{
		Answer:        answer,
		Answerability: answerability,
		Refused:       refused,
		Reason:        reason,
		Citations:     citations,
		Grounded:      grounded && !refused,
		RetrievalMS:   retrievalMS,
		TotalMS:       float64(time.Since(totalStart).Microseconds()) / 1000.0,
	}

	s.logQuery(ctx, question, mode, usedDocs, result.Grounded, answerability)
	return result, nil
}

// buildCitations hydrates retrieval hits into citations and collects the
// cited document IDs in citation order, without duplicates.
func (s *QueryService) buildCitations(
	ctx context.Context, hits []driven.RetrievedChunk,
) ([]domain.Citation, []string) {
	citations := make([]domain.Citation, 0, len(hits))
	usedDocs := make([]string, 0, len(hits))
	seen := make(map[string]bool)

	for _, hit := range hits {
		if hit.Score <= 0 {
			continue
		}

		title := hit.Chunk.DocumentID
		if doc, err := s.docStore.GetDocument(ctx, hit.Chunk.DocumentID); err == nil {
			title = doc.Title
		}

		snippet := strings.ReplaceAll(hit.Chunk.Text, "\n", " ")
		if len(snippet) > snippetLength {
			snippet = snippet[:snippetLength]
		}

		citations = append(citations, domain.Citation{
			DocumentID:    hit.Chunk.DocumentID,
			DocumentTitle: title,
			Position:      hit.Chunk.Position,
			Snippet:       snippet,
			Score:         hit.Score,
		})

		if !seen[hit.Chunk.DocumentID] {
			seen[hit.Chunk.DocumentID] = true
			usedDocs = append(usedDocs, hit.Chunk.DocumentID)
		}
	}

	return citations, usedDocs
}

// logQuery appends one record to the question log. Logging failures are
// reported but do not fail the query.
func (s *QueryService) logQuery(
	ctx context.Context, question, mode string, usedDocs []string, grounded bool, answerability string,
) {
	if usedDocs == nil {
		usedDocs = []string{}
	}
	entry := &domain.QueryLog{
		ID:            uuid.NewString(),
		Timestamp:     s.now().UTC(),
		Question:      question,
		Mode:          mode,
		UsedDocs:      usedDocs,
		Grounded:      grounded,
		Answerability: answerability,
	}
	if err := s.logStore.AppendLog(ctx, entry); err != nil {
		logger.Warn("failed to append query log", zap.Error(err))
	}
}

// buildGroundedAnswer assembles an extractive answer from the top citations.
func buildGroundedAnswer(question string, citations []domain.Citation) string {
	parts := []string{
		fmt.Sprintf("Q: %s", question),
		"",
		"Grounded answer (built from course material):",
	}

	limit := len(citations)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		c := citations[i]
		parts = append(parts, fmt.Sprintf(
			"%d. From %s (chunk %d): %s...",
			i+1, c.DocumentTitle, c.Position+1, strings.TrimSpace(c.Snippet),
		))
	}

	parts = append(parts, "",
		"This answer is constructed only from the retrieved course material above.")
	return strings.Join(parts, "\n")
}
