package writer

import (
	"fmt"

	"github.com/gomutex/godocx"

	"github.com/nguyentantai21042004/interview-transcript/internal/transcript"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

type docxWriter struct{}

func (w *docxWriter) Ext() string { return ".docx" }

// Write renders each block as a bold "Speaker (mm:ss):" heading line followed
// by a paragraph of speech.
func (w *docxWriter) Write(path string, blocks []transcript.Block) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for i, b := range blocks {
		if i > 0 {
			doc.AddParagraph("")
		}
		heading := fmt.Sprintf("%s (%s):", b.Speaker, b.Timestamp)
		doc.AddParagraph("").AddText(heading).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		doc.AddParagraph("").AddText(b.Speech).Font(fontName).Size(fontSize).Color("000000")
	}

	return writeAtomic(path, func(tmp string) error {
		return doc.SaveTo(tmp)
	})
}
