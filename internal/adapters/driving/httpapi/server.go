// Package httpapi exposes the REST API consumed by the dashboard and the
// one-shot CLI commands.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driving"
)

// Server wires the core services into a Fiber application.
type Server struct {
	app      *fiber.App
	overview driving.OverviewService
	logs     driving.LogService
	query    driving.QueryService
	ingest   driving.IngestService
}

// Config holds HTTP server settings.
type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// NewServer creates the API server.
func NewServer(
	cfg Config,
	overview driving.OverviewService,
	logs driving.LogService,
	query driving.QueryService,
	ingest driving.IngestService,
) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s := &Server{
		app:      app,
		overview: overview,
		logs:     logs,
		query:    query,
		ingest:   ingest,
	}
	s.routes()
	return s
}

// routes registers all endpoints.
func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Get("/health", s.handleHealth)
	api.Get("/docs", s.handleListDocs)
	api.Post("/docs", s.handleIngestDoc)

	rag := api.Group("/rag")
	rag.Get("/overview", s.handleOverview)
	rag.Get("/logs", s.handleLogs)
	rag.Post("/query", s.handleQuery)
}

// Listen starts serving on addr. Blocks until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app. Used by handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}
