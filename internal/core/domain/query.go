package domain

// QueryRequest is a question posed against the corpus.
type QueryRequest struct {
	// Question is the question text.
	Question string

	// Mode selects the retrieval strategy. Defaults to ModeHybrid.
	Mode string

	// TopK is the maximum number of chunks to retrieve.
	TopK int
}

// Citation references a chunk that supports an answer.
type Citation struct {
	// DocumentID is the cited document.
	DocumentID string

	// DocumentTitle is the cited document's display title.
	DocumentTitle string

	// Position is the chunk position within the document.
	Position int

	// Snippet is a short excerpt of the cited chunk.
	Snippet string

	// Score is the retrieval relevance score.
	Score float64
}

// QueryResult is the outcome of answering a question.
type QueryResult struct {
	// Answer is the generated answer text.
	Answer string

	// Answerability classifies the strength of the supporting evidence.
	Answerability string

	// Refused reports whether the service declined to answer.
	Refused bool

	// Reason explains a refusal. Empty when Refused is false.
	Reason string

	// Citations are the supporting chunks in relevance order.
	Citations []Citation

	// Grounded reports whether the answer is backed by at least one citation.
	Grounded bool

	// RetrievalMS and TotalMS are rough stage timings in milliseconds.
	RetrievalMS float64
	TotalMS     float64
}
