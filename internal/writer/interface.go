package writer

import "github.com/nguyentantai21042004/interview-transcript/internal/transcript"

// Writer persists formatted speech blocks to a file.
type Writer interface {
	// Ext is the file extension, including the dot, of files this writer produces.
	Ext() string
	Write(path string, blocks []transcript.Block) error
}
