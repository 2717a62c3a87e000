package writer

import (
	"os"

	"github.com/nguyentantai21042004/interview-transcript/internal/transcript"
)

type textWriter struct{}

func (w *textWriter) Ext() string { return ".txt" }

// Write stores the plain-text rendering of blocks, UTF-8, no trailing newline.
func (w *textWriter) Write(path string, blocks []transcript.Block) error {
	data := []byte(transcript.Render(blocks))
	return writeAtomic(path, func(tmp string) error {
		return os.WriteFile(tmp, data, 0644)
	})
}
