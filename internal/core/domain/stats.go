package domain

import "math"

// SummaryStatistics is an aggregate snapshot of the corpus and query
// activity, computed server-side and consumed by the dashboard. It has no
// identity beyond "latest loaded value" and is never mutated by a client.
type SummaryStatistics struct {
	// NumDocuments is the number of documents in the corpus.
	NumDocuments int

	// NumChunks is the number of retrievable chunks across all documents.
	NumChunks int

	// NumQuestions is the total number of questions asked.
	NumQuestions int

	// GroundedRatio is the fraction of answered questions backed by at
	// least one citation. Always in [0, 1].
	GroundedRatio float64

	// ModeCounts maps retrieval mode name to occurrence count.
	ModeCounts map[string]int
}

// GroundedPercent returns the grounded ratio as a rounded percentage.
// The ratio is meaningless with no questions, so it reports 0 whenever
// NumQuestions is zero regardless of the raw ratio value.
func (s SummaryStatistics) GroundedPercent() int {
	if s.NumQuestions == 0 {
		return 0
	}
	return int(math.Round(s.GroundedRatio * 100))
}
