package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driven/index/bleve"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driven/storage/sqlite"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/config"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/services"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

// backend bundles the driven adapters and core services shared by the
// serve, ingest, and seed commands.
type backend struct {
	cfg   *config.Config
	store *sqlite.Store
	index *bleve.Index

	overview *services.OverviewService
	logs     *services.LogService
	query    *services.QueryService
	ingest   *services.IngestService
}

// newBackend loads configuration, opens storage, and builds the core
// services. The retrieval index starts empty; call reindex to rebuild
// it from stored chunks.
func newBackend() (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.Format, cfg.Logging.OutputPath); err != nil {
		return nil, fmt.Errorf("initialising logger: %w", err)
	}

	dataDir, err := resolveDataDir(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	index, err := bleve.NewIndex()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating index: %w", err)
	}

	docStore := store.DocumentStore()
	logStore := store.QueryLogStore()

	b := &backend{
		cfg:      cfg,
		store:    store,
		index:    index,
		overview: services.NewOverviewService(docStore, logStore),
		logs:     services.NewLogService(logStore),
		query: services.NewQueryService(docStore, logStore, index,
			services.WithThresholds(cfg.Retrieval.WeakScore, cfg.Retrieval.StrongScore)),
		ingest: services.NewIngestService(docStore, index,
			services.WithChunking(cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap)),
	}
	return b, nil
}

// reindex rebuilds the in-memory retrieval index from stored chunks.
func (b *backend) reindex(ctx context.Context) error {
	chunks, err := b.store.DocumentStore().ListChunks(ctx)
	if err != nil {
		return fmt.Errorf("listing chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil
	}
	if err := b.index.IndexChunks(ctx, chunks); err != nil {
		return fmt.Errorf("indexing chunks: %w", err)
	}
	logger.Info("rebuilt retrieval index", zap.Int("chunks", len(chunks)))
	return nil
}

// close releases storage and flushes the logger.
func (b *backend) close() {
	if err := b.store.Close(); err != nil {
		logger.Warn("closing store", zap.Error(err))
	}
	logger.Sync()
}

// resolveDataDir expands the configured data directory, defaulting to
// ~/.raglab, and ensures it exists.
func resolveDataDir(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".raglab")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dir, nil
}
