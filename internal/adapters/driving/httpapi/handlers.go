package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleOverview serves GET /api/rag/overview.
// The payload carries exactly the five fields of the dashboard wire
// contract; mode_counts is always an object, never null.
func (s *Server) handleOverview(c *fiber.Ctx) error {
	stats, err := s.overview.Overview(c.Context())
	if err != nil {
		logger.Error("failed to compute overview", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute overview",
		})
	}

	modeCounts := stats.ModeCounts
	if modeCounts == nil {
		modeCounts = map[string]int{}
	}

	return c.JSON(fiber.Map{
		"num_documents":  stats.NumDocuments,
		"num_chunks":     stats.NumChunks,
		"num_questions":  stats.NumQuestions,
		"grounded_ratio": stats.GroundedRatio,
		"mode_counts":    modeCounts,
	})
}

// handleLogs serves GET /api/rag/logs, newest first.
func (s *Server) handleLogs(c *fiber.Ctx) error {
	entries, err := s.logs.List(c.Context())
	if err != nil {
		logger.Error("failed to list query logs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list logs",
		})
	}

	logs := make([]fiber.Map, 0, len(entries))
	for _, l := range entries {
		usedDocs := l.UsedDocs
		if usedDocs == nil {
			usedDocs = []string{}
		}
		logs = append(logs, fiber.Map{
			"log_id":        l.ID,
			"timestamp":     l.Timestamp.UTC().Format(time.RFC3339),
			"question":      l.Question,
			"mode":          l.Mode,
			"used_docs":     usedDocs,
			"grounded":      l.Grounded,
			"answerability": l.Answerability,
		})
	}

	return c.JSON(fiber.Map{"logs": logs})
}

// handleQuery serves POST /api/rag/query.
func (s *Server) handleQuery(c *fiber.Ctx) error {
	var req struct {
		Question string `json:"question"`
		Mode     string `json:"mode"`
		TopK     int    `json:"top_k"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	result, err := s.query.Ask(c.Context(), domain.QueryRequest{
		Question: req.Question,
		Mode:     req.Mode,
		TopK:     req.TopK,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Error("failed to process query", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process query",
		})
	}

	citations := make([]fiber.Map, 0, len(result.Citations))
	for _, cit := range result.Citations {
		citations = append(citations, fiber.Map{
			"doc_id":    cit.DocumentID,
			"doc_title": cit.DocumentTitle,
			"position":  cit.Position,
			"snippet":   cit.Snippet,
			"score":     cit.Score,
		})
	}

	return c.JSON(fiber.Map{
		"answer":        result.Answer,
		"answerability": result.Answerability,
		"refused":       result.Refused,
		"reason":        result.Reason,
		"grounded":      result.Grounded,
		"citations":     citations,
		"timings_ms": fiber.Map{
			"retrieval": result.RetrievalMS,
			"total":     result.TotalMS,
		},
	})
}

// handleListDocs serves GET /api/docs.
func (s *Server) handleListDocs(c *fiber.Ctx) error {
	docs, err := s.ingest.ListDocuments(c.Context())
	if err != nil {
		logger.Error("failed to list documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	out := make([]fiber.Map, 0, len(docs))
	for _, d := range docs {
		topics := d.Topics
		if topics == nil {
			topics = []string{}
		}
		out = append(out, fiber.Map{
			"doc_id":      d.ID,
			"title":       d.Title,
			"source_type": d.SourceType,
			"topics":      topics,
			"num_chunks":  d.NumChunks,
			"created_at":  d.CreatedAt.UTC().Format(time.RFC3339),
			"updated_at":  d.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{"documents": out})
}

// handleIngestDoc serves POST /api/docs with a JSON body of
// {"id", "title", "source_type", "text"}.
func (s *Server) handleIngestDoc(c *fiber.Ctx) error {
	var req struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		SourceType string `json:"source_type"`
		Text       string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	doc, err := s.ingest.IngestText(c.Context(), req.ID, req.Title, req.SourceType, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Error("failed to ingest document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to ingest document",
		})
	}

	return c.JSON(fiber.Map{
		"doc_id":     doc.ID,
		"title":      doc.Title,
		"num_chunks": doc.NumChunks,
	})
}
