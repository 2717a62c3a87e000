package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are helping a researcher annotate an interview between an Interviewer and a Student.
Using the transcript below, write a concise summary in English.

Requirements:
- Start with a one-sentence overview of what the interview covers
- List the main topics in the order they come up, with the timestamp where each starts
- For each topic, summarise the Student's answers, keeping notable quotes verbatim
- Use markdown: headings, bullet points, bold for key terms
- Finish with a "Follow-up questions" section if anything was left unanswered

Transcript:
---
%s
---`

var ErrNoAPIKeys = errors.New("no Gemini API keys configured: set GEMINI_API_KEYS")

// SummarizeAll reads every formatted transcript in srcDir, asks Gemini for a
// summary of each, and writes <name>.md and <name>.docx into destDir.
func (s *implSummarizer) SummarizeAll(ctx context.Context, srcDir, destDir string) error {
	if len(s.apiKeys) == 0 {
		return ErrNoAPIKeys
	}

	files, err := s.discoverTranscripts(srcDir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		s.logger.Info(ctx, "No formatted transcripts found in %s", srcDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d transcripts to summarize", len(files))

	successCount := 0
	failCount := 0

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(files), name)

		if err := s.summarizeOne(ctx, path, name, destDir); err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", name, filepath.Join(destDir, name+".md"))
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	if failCount > 0 {
		return fmt.Errorf("%d of %d transcripts failed to summarize", failCount, len(files))
	}
	return nil
}

func (s *implSummarizer) summarizeOne(ctx context.Context, path, name, destDir string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	summary, err := s.summarize(ctx, string(content))
	if err != nil {
		return err
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", name, s.now(), strings.TrimSpace(summary))

	mdPath := filepath.Join(destDir, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(destDir, name+".docx")
	if err := markdownToDocx(name, summary, docxPath); err != nil {
		// The markdown summary is already on disk
		s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
	}
	return nil
}

// summarize sends the transcript to the model, rotating API keys on
// 429 / quota errors.
func (s *implSummarizer) summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	var lastErr error
	for range len(s.apiKeys) {
		text, err := s.generate(ctx, s.apiKeys[s.currentKey], prompt)
		if err == nil {
			return text, nil
		}
		if !isQuotaError(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}

		s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
		s.rotateKey()
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) callGemini(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func (s *implSummarizer) discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".txt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func today() string {
	return time.Now().Format("2006-01-02 15:04")
}
