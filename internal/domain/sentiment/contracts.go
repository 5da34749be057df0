package sentiment

import "context"

// Analyzer produces an aggregated sentiment verdict for a piece of text
type Analyzer interface {
	// Analyze runs the configured model ensemble over text and aggregates the verdicts.
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// Summarizer produces a one-line market intelligence summary
type Summarizer interface {
	// Summarize writes a single-sentence summary of text given its analysis.
	// sourceURL, when non-empty, is appended as a markdown source link.
	Summarize(ctx context.Context, text string, analysis *Analysis, sourceURL string) (string, error)
}
