package transcript

import (
	"fmt"
	"strings"
)

// caption is one raw cue: its interval line and the text lines below it.
type caption struct {
	pos      int
	interval string
	text     string
}

var markup = strings.NewReplacer("<v ", "", "</v>", "")

// splitCaptions drops the header paragraph and cuts the rest of the document
// into cues. Each cue must carry an identifier, an interval and text.
func splitCaptions(raw string) ([]caption, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	chunks := strings.Split(raw, "\n\n")
	if len(chunks) < 2 {
		return nil, nil
	}

	captions := make([]caption, 0, len(chunks)-1)
	for i, chunk := range chunks[1:] {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		// Runs of more than two newlines leave the next cue starting with "\n"
		chunk = strings.TrimLeft(chunk, "\n")
		parts := strings.SplitN(chunk, "\n", 3)
		if len(parts) < 3 {
			return nil, &Error{
				Kind:   KindMalformedBlock,
				Block:  i + 1,
				Reason: fmt.Sprintf("got %d line(s), want identifier, interval and text", len(parts)),
			}
		}
		captions = append(captions, caption{pos: i + 1, interval: parts[1], text: parts[2]})
	}
	return captions, nil
}

// startTimestamp reduces "HH:MM:SS.fff --> ..." to "MM:SS".
func startTimestamp(interval string) (string, error) {
	start, _, ok := strings.Cut(interval, "-->")
	if !ok {
		return "", fmt.Errorf("interval %q has no --> separator", interval)
	}
	fields := strings.Fields(start)
	if len(fields) == 0 {
		return "", fmt.Errorf("interval %q has no start time", interval)
	}

	clock := strings.Split(fields[0], ":")
	var minutes, seconds string
	switch len(clock) {
	case 3:
		minutes, seconds = clock[1], clock[2]
	case 2:
		minutes, seconds = clock[0], clock[1]
	default:
		return "", fmt.Errorf("start time %q is not [hh:]mm:ss.fff", fields[0])
	}
	seconds, _, _ = strings.Cut(seconds, ".")
	if minutes == "" || seconds == "" {
		return "", fmt.Errorf("start time %q is not [hh:]mm:ss.fff", fields[0])
	}
	return minutes + ":" + seconds, nil
}

// splitSpeaker strips the voice markup and separates the speaker label from
// what was said. Text without a ">" is all speaker and no speech.
func splitSpeaker(text string) (speaker, speech string) {
	speaker, speech, _ = strings.Cut(markup.Replace(text), ">")
	speech = strings.TrimSpace(strings.ReplaceAll(speech, "\n", " "))
	return speaker, speech
}

// extractEvents turns every cue of the document into an event, in order.
func extractEvents(raw string) ([]Event, error) {
	captions, err := splitCaptions(raw)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(captions))
	for _, c := range captions {
		ts, err := startTimestamp(c.interval)
		if err != nil {
			return nil, &Error{Kind: KindMalformedBlock, Block: c.pos, Reason: err.Error()}
		}
		speaker, speech := splitSpeaker(c.text)
		events = append(events, Event{Timestamp: ts, Speaker: speaker, Speech: speech})
	}
	return events, nil
}

// dropSilent removes events with nothing but whitespace to say.
func dropSilent(events []Event) []Event {
	kept := events[:0:0]
	for _, e := range events {
		if strings.TrimSpace(e.Speech) != "" {
			kept = append(kept, e)
		}
	}
	return kept
}
