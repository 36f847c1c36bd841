// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - DocumentStore: document and chunk persistence (SQLite)
//   - QueryLogStore: query log persistence and aggregates (SQLite)
//   - Retriever: keyword retrieval over chunks (Bleve)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
