package writer

import (
	"fmt"
	"strings"
)

// New returns the Writer for an output format ("txt" or "docx").
func New(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "txt":
		return &textWriter{}, nil
	case "docx":
		return &docxWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
