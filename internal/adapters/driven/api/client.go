// Package api provides the HTTP client the dashboard uses to read a
// running raglab server. It implements the driving OverviewService,
// LogService, and QueryService ports by proxying the REST API.
//
// Every read is a single attempt: no retries and no timeout. Any failure,
// whether network, non-success status, or decode, surfaces as *FetchError;
// callers map that to their own fallback display state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
)

// Ensure Client implements the dashboard ports.
var (
	_ driving.OverviewService = (*Client)(nil)
	_ driving.LogService      = (*Client)(nil)
	_ driving.QueryService    = (*Client)(nil)
)

// FetchError is the single error kind the dashboard client produces.
// Network errors, non-success statuses, and malformed payloads are not
// distinguished.
type FetchError struct {
	// Path is the requested resource path.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client reads dashboard data from a raglab server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the server at baseURL,
// e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// get performs one GET against path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Path: path, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// post performs one POST with a JSON body and decodes the JSON response.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &FetchError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Path: path, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Path: path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// overviewPayload is the wire shape of GET /api/rag/overview.
type overviewPayload struct {
	NumDocuments  int            `json:"num_documents"`
	NumChunks     int            `json:"num_chunks"`
	NumQuestions  int            `json:"num_questions"`
	GroundedRatio float64        `json:"grounded_ratio"`
	ModeCounts    map[string]int `json:"mode_counts"`
}

// Overview fetches the summary statistics.
func (c *Client) Overview(ctx context.Context) (*domain.SummaryStatistics, error) {
	var payload overviewPayload
	if err := c.get(ctx, "/api/rag/overview", &payload); err != nil {
		return nil, err
	}

	return &domain.SummaryStatistics{
		NumDocuments:  payload.NumDocuments,
		NumChunks:     payload.NumChunks,
		NumQuestions:  payload.NumQuestions,
		GroundedRatio: payload.GroundedRatio,
		ModeCounts:    payload.ModeCounts,
	}, nil
}

// logPayload is the wire shape of one entry of GET /api/rag/logs.
type logPayload struct {
	LogID         string   `json:"log_id"`
	Timestamp     string   `json:"timestamp"`
	Question      string   `json:"question"`
	Mode          string   `json:"mode"`
	UsedDocs      []string `json:"used_docs"`
	Grounded      bool     `json:"grounded"`
	Answerability string   `json:"answerability"`
}

// logsPayload is the wire shape of GET /api/rag/logs.
type logsPayload struct {
	Logs []logPayload `json:"logs"`
}

// List fetches the question log, preserving backend order.
func (c *Client) List(ctx context.Context) ([]domain.QueryLog, error) {
	var payload logsPayload
	if err := c.get(ctx, "/api/rag/logs", &payload); err != nil {
		return nil, err
	}

	logs := make([]domain.QueryLog, 0, len(payload.Logs))
	for _, l := range payload.Logs {
		ts, err := time.Parse(time.RFC3339, l.Timestamp)
		if err != nil {
			return nil, &FetchError{Path: "/api/rag/logs", Err: fmt.Errorf("decoding timestamp: %w", err)}
		}
		logs = append(logs, domain.QueryLog{
			ID:            l.LogID,
			Timestamp:     ts,
			Question:      l.Question,
			Mode:          l.Mode,
			UsedDocs:      l.UsedDocs,
			Grounded:      l.Grounded,
			Answerability: l.Answerability,
		})
	}
	return logs, nil
}

// queryRequestPayload is the wire shape of POST /api/rag/query.
type queryRequestPayload struct {
	Question string `json:"question"`
	Mode     string `json:"mode,omitempty"`
	TopK     int    `json:"top_k,omitempty"`
}

// citationPayload is the wire shape of one citation.
type citationPayload struct {
	DocID    string  `json:"doc_id"`
	DocTitle string  `json:"doc_title"`
	Position int     `json:"position"`
	Snippet  string  `json:"snippet"`
	Score    float64 `json:"score"`
}

// queryResultPayload is the wire shape of a query response.
type queryResultPayload struct {
	Answer        string             `json:"answer"`
	Answerability string             `json:"answerability"`
	Refused       bool               `json:"refused"`
	Reason        string             `json:"reason,omitempty"`
	Grounded      bool               `json:"grounded"`
	Citations     []citationPayload  `json:"citations"`
	TimingsMS     map[string]float64 `json:"timings_ms"`
}

// Ask submits a question to the server.
func (c *Client) Ask(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	payload := queryRequestPayload{
		Question: req.Question,
		Mode:     req.Mode,
		TopK:     req.TopK,
	}

	var result queryResultPayload
	if err := c.post(ctx, "/api/rag/query", payload, &result); err != nil {
		return nil, err
	}

	citations := make([]domain.Citation, 0, len(result.Citations))
	for _, cit := range result.Citations {
		citations = append(citations, domain.Citation{
			DocumentID:    cit.DocID,
			DocumentTitle: cit.DocTitle,
			Position:      cit.Position,
			Snippet:       cit.Snippet,
			Score:         cit.Score,
		})
	}

	return &domain.QueryResult{
		Answer:        result.Answer,
		Answerability: result.Answerability,
		Refused:       result.Refused,
		Reason:        result.Reason,
		Grounded:      result.Grounded,
		Citations:     citations,
		RetrievalMS:   result.TimingsMS["retrieval"],
		TotalMS:       result.TimingsMS["total"],
	}, nil
}
