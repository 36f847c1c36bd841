package domain

import "time"

// QueryLog is one append-only record of a past question, kept for the
// dashboard and for evaluation. Records are immutable snapshots.
type QueryLog struct {
	// ID uniquely identifies the log entry.
	ID string

	// Timestamp is when the question was asked.
	Timestamp time.Time

	// Question is the full question text, never truncated in storage.
	Question string

	// Mode is the retrieval mode used (see Mode* constants).
	Mode string

	// UsedDocs lists the cited document IDs in citation order. May be empty.
	UsedDocs []string

	// Grounded reports whether at least one citation backed the answer.
	Grounded bool

	// Answerability classifies how well the corpus supported the question
	// (see Answerability* constants).
	Answerability string
}

// Retrieval modes. The enumeration is owned by the backend; clients
// render whatever value they receive.
const (
	ModeBM25   = "bm25"
	ModeDense  = "dense"
	ModeHybrid = "hybrid"
)

// Answerability labels.
const (
	AnswerabilityHigh   = "HIGH"
	AnswerabilityMedium = "MEDIUM"
	AnswerabilityLow    = "LOW"
)

// ValidMode reports whether mode is a known retrieval mode.
func ValidMode(mode string) bool {
	switch mode {
	case ModeBM25, ModeDense, ModeHybrid:
		return true
	}
	return false
}
