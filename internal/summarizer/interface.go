package summarizer

import "context"

// Summarizer reads formatted interview transcripts and produces LLM-generated
// markdown and docx summaries.
type Summarizer interface {
	SummarizeAll(ctx context.Context, srcDir, destDir string) error
}
