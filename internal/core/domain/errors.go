package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates no documents have been ingested yet.
	// Queries are refused rather than answered from nothing.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrRetrieverUnavailable indicates the retrieval index is not configured.
	ErrRetrieverUnavailable = errors.New("retriever unavailable")
)
