package domain

import "time"

// Document is a source document in the course corpus.
type Document struct {
	// ID is the stable document identifier, derived from the filename.
	ID string

	// Title is the display title.
	Title string

	// SourceType describes the kind of material, e.g. "slides" or "notes".
	SourceType string

	// Topics are optional topic tags.
	Topics []string

	// NumChunks is the number of chunks extracted from this document.
	NumChunks int

	// CreatedAt is when the document was first ingested.
	CreatedAt time.Time

	// UpdatedAt is when the document was last re-ingested.
	UpdatedAt time.Time
}

// Chunk is a retrievable sub-unit of a document used for grounding.
type Chunk struct {
	// ID uniquely identifies the chunk.
	ID string

	// DocumentID references the owning document.
	DocumentID string

	// Text is the chunk content.
	Text string

	// Position is the zero-based index of the chunk within its document.
	Position int
}
