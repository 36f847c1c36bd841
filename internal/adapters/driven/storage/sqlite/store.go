// Package sqlite provides SQLite-backed persistence for documents, chunks,
// and the question log.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides the document and
// query log store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.raglab/data/raglab.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".raglab", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "raglab.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// QueryLogStore returns a QueryLogStore interface backed by this store.
func (s *Store) QueryLogStore() driven.QueryLogStore {
	return &queryLogStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocument stores or updates a document. Re-saving an existing
// document replaces its chunks.
func (d *documentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	topicsJSON, err := json.Marshal(doc.Topics)
	if err != nil {
		return fmt.Errorf("marshalling topics: %w", err)
	}

	_, err = d.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, source_type, topics, num_chunks, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			source_type = excluded.source_type,
			topics = excluded.topics,
			num_chunks = excluded.num_chunks,
			updated_at = excluded.updated_at
	`, doc.ID, doc.Title, doc.SourceType, string(topicsJSON),
		doc.NumChunks, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// SaveChunks replaces the stored chunks of each affected document.
func (d *documentStore) SaveChunks(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := d.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	docIDs := make(map[string]bool)
	for _, c := range chunks {
		docIDs[c.DocumentID] = true
	}
	for id := range docIDs {
		if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", id); err != nil {
			return fmt.Errorf("clearing chunks: %w", err)
		}
	}

	for _, c := range chunks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, document_id, text, position)
			VALUES (?, ?, ?, ?)
		`, c.ID, c.DocumentID, c.Text, c.Position)
		if err != nil {
			return fmt.Errorf("saving chunk: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing chunks: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID.
func (d *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := d.store.db.QueryRowContext(ctx, `
		SELECT id, title, source_type, topics, num_chunks, created_at, updated_at
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns all documents ordered by creation time.
func (d *documentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := d.store.db.QueryContext(ctx, `
		SELECT id, title, source_type, topics, num_chunks, created_at, updated_at
		FROM documents ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// ListChunks returns all chunks ordered by document and position.
func (d *documentStore) ListChunks(ctx context.Context) ([]domain.Chunk, error) {
	rows, err := d.store.db.QueryContext(ctx, `
		SELECT id, document_id, text, position
		FROM chunks ORDER BY document_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("listing chunks: %w", err)
	}
	defer rows.Close()

	chunks := []domain.Chunk{}
	for rows.Next() {
		var c domain.Chunk
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Text, &c.Position); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// CountDocuments returns the number of documents.
func (d *documentStore) CountDocuments(ctx context.Context) (int, error) {
	return d.store.countRows(ctx, "documents")
}

// CountChunks returns the number of chunks.
func (d *documentStore) CountChunks(ctx context.Context) (int, error) {
	return d.store.countRows(ctx, "chunks")
}

// scanner abstracts sql.Row and sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	var topicsJSON string
	var createdAt, updatedAt time.Time

	err := row.Scan(&doc.ID, &doc.Title, &doc.SourceType, &topicsJSON,
		&doc.NumChunks, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(topicsJSON), &doc.Topics); err != nil {
		return nil, fmt.Errorf("unmarshalling topics: %w", err)
	}
	doc.CreatedAt = createdAt.UTC()
	doc.UpdatedAt = updatedAt.UTC()
	return &doc, nil
}

func (s *Store) countRows(ctx context.Context, table string) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return count, nil
}

// ==================== Query Log Store ====================

// queryLogStore implements driven.QueryLogStore.
type queryLogStore struct {
	store *Store
}

var _ driven.QueryLogStore = (*queryLogStore)(nil)

// AppendLog stores one query log record.
func (q *queryLogStore) AppendLog(ctx context.Context, log *domain.QueryLog) error {
	usedDocsJSON, err := json.Marshal(log.UsedDocs)
	if err != nil {
		return fmt.Errorf("marshalling used docs: %w", err)
	}

	_, err = q.store.db.ExecContext(ctx, `
		INSERT INTO query_logs (id, timestamp, question, mode, used_docs, grounded, answerability)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, log.ID, log.Timestamp, log.Question, log.Mode,
		string(usedDocsJSON), boolToInt(log.Grounded), log.Answerability)
	if err != nil {
		return fmt.Errorf("appending query log: %w", err)
	}
	return nil
}

// ListLogs returns all log records, newest first.
func (q *queryLogStore) ListLogs(ctx context.Context) ([]domain.QueryLog, error) {
	rows, err := q.store.db.QueryContext(ctx, `
		SELECT id, timestamp, question, mode, used_docs, grounded, answerability
		FROM query_logs ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing query logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.QueryLog{}
	for rows.Next() {
		var l domain.QueryLog
		var usedDocsJSON string
		var grounded int
		var ts time.Time

		if err := rows.Scan(&l.ID, &ts, &l.Question, &l.Mode,
			&usedDocsJSON, &grounded, &l.Answerability); err != nil {
			return nil, fmt.Errorf("scanning query log: %w", err)
		}
		if err := json.Unmarshal([]byte(usedDocsJSON), &l.UsedDocs); err != nil {
			return nil, fmt.Errorf("unmarshalling used docs: %w", err)
		}
		l.Timestamp = ts.UTC()
		l.Grounded = grounded != 0
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// CountLogs returns the total and grounded record counts.
func (q *queryLogStore) CountLogs(ctx context.Context) (int, int, error) {
	var total, grounded int
	row := q.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(grounded), 0) FROM query_logs
	`)
	if err := row.Scan(&total, &grounded); err != nil {
		return 0, 0, fmt.Errorf("counting query logs: %w", err)
	}
	return total, grounded, nil
}

// ModeCounts returns record counts grouped by retrieval mode.
func (q *queryLogStore) ModeCounts(ctx context.Context) (map[string]int, error) {
	rows, err := q.store.db.QueryContext(ctx, `
		SELECT mode, COUNT(*) FROM query_logs GROUP BY mode
	`)
	if err != nil {
		return nil, fmt.Errorf("counting modes: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var mode string
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return nil, fmt.Errorf("scanning mode count: %w", err)
		}
		counts[mode] = count
	}
	return counts, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
