// Package domain defines the core business entities for the RAG course lab.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested course document with metadata
//   - Chunk: A retrievable unit within a document
//   - QueryLog: An append-only record of a past question
//   - SummaryStatistics: The aggregate snapshot behind the dashboard
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
