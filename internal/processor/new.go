package processor

import (
	"io"
	"sync"

	"github.com/nguyentantai21042004/interview-transcript/internal/config"
	"github.com/nguyentantai21042004/interview-transcript/internal/logger"
	"github.com/nguyentantai21042004/interview-transcript/internal/writer"
)

type implProcessor struct {
	interviewer   string
	outputDir     string
	suffix        string
	maxConcurrent int
	writer        writer.Writer
	logger        logger.Logger

	progressMu sync.Mutex
	progress   io.Writer
}

// New creates a Processor. Each written file is reported as "in -> out" on
// progress when it is non-nil.
func New(cfg *config.Config, w writer.Writer, log logger.Logger, progress io.Writer) Processor {
	maxConcurrent := cfg.Performance.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implProcessor{
		interviewer:   cfg.Interviewer,
		outputDir:     cfg.Paths.Output,
		suffix:        cfg.Output.Suffix,
		maxConcurrent: maxConcurrent,
		writer:        w,
		logger:        log,
		progress:      progress,
	}
}
