package transcript

import (
	"fmt"
	"strings"
)

// Parse runs a raw WebVTT transcript through extraction, filtering, merging
// and role assignment, and returns the relabeled speech blocks.
func Parse(raw, interviewer string) ([]Block, error) {
	events, err := extractEvents(raw)
	if err != nil {
		return nil, err
	}

	blocks := mergeEvents(dropSilent(events))

	roles, err := AssignRoles(speakers(blocks), interviewer)
	if err != nil {
		return nil, err
	}
	return roles.Apply(blocks), nil
}

// Render writes blocks as "Speaker (mm:ss):\n\tspeech" separated by blank lines.
func Render(blocks []Block) string {
	rendered := make([]string, len(blocks))
	for i, b := range blocks {
		rendered[i] = fmt.Sprintf("%s (%s):\n\t%s", b.Speaker, b.Timestamp, b.Speech)
	}
	return strings.Join(rendered, "\n\n")
}

// Format converts a raw transcript into the human-readable two-party form.
func Format(raw, interviewer string) (string, error) {
	blocks, err := Parse(raw, interviewer)
	if err != nil {
		return "", err
	}
	return Render(blocks), nil
}
