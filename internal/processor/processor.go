package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/interview-transcript/internal/transcript"
	"github.com/nguyentantai21042004/interview-transcript/internal/writer"
)

// ErrOutputExists is returned when the target output file is already present.
var ErrOutputExists = writer.ErrExists

// Process reads one transcript, formats it and writes the result. Nothing is
// written unless formatting succeeds, and an existing output is never replaced.
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	outputPath := p.outputPath(inputPath)
	p.logger.Debug(ctx, "Formatting transcript: %s", inputPath)

	if err := checkAbsent(outputPath); err != nil {
		return err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	blocks, err := transcript.Parse(string(raw), p.interviewer)
	if err != nil {
		return fmt.Errorf("format transcript: %w", err)
	}
	p.logger.Debug(ctx, "Parsed %d speech block(s) from %s", len(blocks), inputPath)

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := p.writer.Write(outputPath, blocks); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.logger.Info(ctx, "Formatted %s -> %s", inputPath, outputPath)
	p.report(inputPath, outputPath)
	return nil
}

// outputPath maps dir/interview.vtt to <output>/interview<suffix><ext>.
func (p *implProcessor) outputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.outputDir, stem+p.suffix+p.writer.Ext())
}

func (p *implProcessor) report(inputPath, outputPath string) {
	if p.progress == nil {
		return
	}
	p.progressMu.Lock()
	defer p.progressMu.Unlock()
	fmt.Fprintf(p.progress, "%s -> %s\n", inputPath, outputPath)
}

func checkAbsent(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("check output: %w", err)
	}
}
