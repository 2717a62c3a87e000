package processor

import "context"

// Processor formats transcript files into the output directory
type Processor interface {
	// Process formats a single transcript file
	Process(ctx context.Context, inputPath string) error
	// ProcessAll formats every file, continuing past failures, and returns
	// the joined per-file errors
	ProcessAll(ctx context.Context, inputPaths []string) error
}
